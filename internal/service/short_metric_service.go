package service

import (
	"Biteflow/internal/api/dto"
	"Biteflow/internal/model"
	"Biteflow/internal/repository"
	"context"
	"time"
)

type ShortMetricService interface {
	SyncShortMetric(ctx context.Context, shortID uint64) error
	GetMetrics7Days(ctx context.Context, shortID uint64) ([]*dto.ShortMetricPointDTO, error)
	GetMetrics30Days(ctx context.Context, shortID uint64) ([]*dto.ShortMetricPointDTO, error)
}

type shortMetricServiceImpl struct {
	metricRepo repository.ShortMetricRepo
	shortRepo  repository.ShortRepo
	actionRepo repository.ShortActionRepo
}

func NewShortMetricService(
	metricRepo repository.ShortMetricRepo,
	shortRepo repository.ShortRepo,
	actionRepo repository.ShortActionRepo,
) ShortMetricService {
	return &shortMetricServiceImpl{
		metricRepo: metricRepo,
		shortRepo:  shortRepo,
		actionRepo: actionRepo,
	}
}

// SyncShortMetric 以台账基数为准回写冗余计数，并落当日指标快照。
// 正常路径下计数与台账在事务内同步变更，这里只是漂移兜底。
func (s *shortMetricServiceImpl) SyncShortMetric(ctx context.Context, shortID uint64) error {
	short, err := s.shortRepo.GetShort(ctx, shortID)
	if err != nil {
		return err
	}

	likes, err := s.actionRepo.GetLikeCountByShortID(ctx, shortID)
	if err != nil {
		return err
	}
	comments, err := s.actionRepo.GetCommentCountByShortID(ctx, shortID)
	if err != nil {
		return err
	}

	if likes != short.LikesCount || comments != short.CommentsCount {
		if err = s.shortRepo.UpdateShortCounts(ctx, shortID, likes, comments); err != nil {
			return err
		}
	}

	now := time.Now()
	metricDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.metricRepo.SaveOrUpdateMetric(ctx, &model.ShortDailyMetric{
		ShortID:       shortID,
		MetricDate:    metricDate,
		TotalViews:    short.ViewsCount,
		TotalLikes:    likes,
		TotalComments: comments,
		CreatedAt:     now,
	})
}

func (s *shortMetricServiceImpl) GetMetrics7Days(ctx context.Context, shortID uint64) ([]*dto.ShortMetricPointDTO, error) {
	return s.getMetrics(ctx, shortID, 7)
}

func (s *shortMetricServiceImpl) GetMetrics30Days(ctx context.Context, shortID uint64) ([]*dto.ShortMetricPointDTO, error) {
	return s.getMetrics(ctx, shortID, 30)
}

func (s *shortMetricServiceImpl) getMetrics(ctx context.Context, shortID uint64, days int) ([]*dto.ShortMetricPointDTO, error) {
	metrics, err := s.metricRepo.GetMetricsSince(ctx, shortID, time.Now().AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}
	res := make([]*dto.ShortMetricPointDTO, 0, len(metrics))
	for _, m := range metrics {
		res = append(res, &dto.ShortMetricPointDTO{
			MetricDate:    m.MetricDate.Format("2006-01-02"),
			TotalViews:    m.TotalViews,
			TotalLikes:    m.TotalLikes,
			TotalComments: m.TotalComments,
		})
	}
	return res, nil
}
