package api

import "Biteflow/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ShortHandler       *handler.ShortHandler
	ShortActionHandler *handler.ShortActionHandler
	ShortMetricHandler *handler.ShortMetricHandler
	MediaHandler       *handler.MediaHandler
}
