package model

import (
	"time"
)

type ShortDailyMetric struct {
	ID            uint64    `gorm:"primaryKey"`
	ShortID       uint64    `gorm:"not null;index:idx_short_date,unique"`
	MetricDate    time.Time `gorm:"not null;index:idx_short_date,unique;column:metric_date"`
	TotalViews    int64     `gorm:"not null;default:0"`
	TotalLikes    int64     `gorm:"not null;default:0"`
	TotalComments int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (ShortDailyMetric) TableName() string {
	return "short_daily_metrics"
}
