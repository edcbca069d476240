package job

import (
	"Biteflow/internal/pkg/consts"
	"Biteflow/internal/pkg/logger"
	"Biteflow/internal/pkg/redis"
	"Biteflow/internal/pkg/util"
	"Biteflow/internal/repository"
	"Biteflow/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

type ShortMetricsJob struct {
	shortRepo repository.ShortRepo
	metricSvc service.ShortMetricService
}

func NewShortMetricsJob(
	shortRepo repository.ShortRepo,
	metricSvc service.ShortMetricService,
) *ShortMetricsJob {
	return &ShortMetricsJob{
		shortRepo: shortRepo,
		metricSvc: metricSvc,
	}
}

func (s *ShortMetricsJob) Run() {
	traceID := "job-short-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	shortIDs, err := s.collectDirty(ctx)
	if err != nil {
		log.ErrorContext(ctx, "collect dirty shorts error", "err", err)
		return
	}
	if len(shortIDs) == 0 {
		return
	}

	synced := 0
	for _, sid := range shortIDs {
		if err = s.metricSvc.SyncShortMetric(ctx, sid); err != nil {
			log.ErrorContext(ctx, "sync short daily metric error", "sid", sid, "err", err)
			continue
		}
		synced++
	}

	log.InfoContext(ctx, "sync short metrics success",
		"short_count", len(shortIDs),
		"synced", synced)
}

// collectDirty 取出脏集合，Redis 未启用时退化为全量扫描
func (s *ShortMetricsJob) collectDirty(ctx context.Context) ([]uint64, error) {
	if !redis.Enabled() {
		return s.shortRepo.ListIDs(ctx, consts.MetricSyncScanLimit)
	}

	processingKey := consts.ShortDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.ShortDirtyKey, processingKey); err != nil {
		// 脏集合不存在时说明无增量
		return nil, nil
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		return nil, err
	}

	shortIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		return nil, err
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete short processing set error", "err", err)
	}

	return shortIDs, nil
}
