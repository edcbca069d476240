package handler

import (
	"Biteflow/internal/pkg/response"
	"Biteflow/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ShortMetricHandler struct {
	metricSvc service.ShortMetricService
}

func NewShortMetricHandler(metricSvc service.ShortMetricService) *ShortMetricHandler {
	return &ShortMetricHandler{
		metricSvc: metricSvc,
	}
}

// GetMetrics7Days 获取短视频 7 天趋势
func (h *ShortMetricHandler) GetMetrics7Days(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	metricData, err := h.metricSvc.GetMetrics7Days(c.Request.Context(), shortID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metricData)
}

// GetMetrics30Days 获取短视频 30 天趋势
func (h *ShortMetricHandler) GetMetrics30Days(c *gin.Context) {
	shortID, err := strconv.ParseUint(c.Param("short_id"), 10, 64)
	if err != nil || shortID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	metricData, err := h.metricSvc.GetMetrics30Days(c.Request.Context(), shortID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metricData)
}
