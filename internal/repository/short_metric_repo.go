package repository

import (
	"Biteflow/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShortMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.ShortDailyMetric) error
	GetMetricsSince(ctx context.Context, shortID uint64, since time.Time) ([]*model.ShortDailyMetric, error)
}

type shortMetricRepoImpl struct {
	db *gorm.DB
}

func NewShortMetricRepository(db *gorm.DB) ShortMetricRepo {
	return &shortMetricRepoImpl{db: db}
}

// SaveOrUpdateMetric 采用 Upsert 逻辑。如果 short_id + metric_date 已存在，则更新各项数值
func (r *shortMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.ShortDailyMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "short_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_views",
			"total_likes",
			"total_comments",
		}),
	}).Create(metric).Error
}

// GetMetricsSince 获取短视频自指定日期以来的趋势数据
func (r *shortMetricRepoImpl) GetMetricsSince(ctx context.Context, shortID uint64, since time.Time) ([]*model.ShortDailyMetric, error) {
	metrics := make([]*model.ShortDailyMetric, 0)
	result := r.db.WithContext(ctx).
		Where("short_id = ?", shortID).
		Where("metric_date >= ?", since).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
