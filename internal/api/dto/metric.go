package dto

// ShortMetricPointDTO 单日指标快照
type ShortMetricPointDTO struct {
	MetricDate    string `json:"metric_date"`
	TotalViews    int64  `json:"total_views"`
	TotalLikes    int64  `json:"total_likes"`
	TotalComments int64  `json:"total_comments"`
}
