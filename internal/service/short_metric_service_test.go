package service

import (
	"Biteflow/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncShortMetric(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	restaurant := env.seedRestaurant(t, 100)
	short := env.seedShort(t, &model.Short{
		RestaurantID: restaurant.ID, Title: "招牌菜", MediaURL: "a.mp4", IsPermanent: true,
	})

	for uid := uint64(1); uid <= 3; uid++ {
		_, err := env.actionSvc.ToggleLike(ctx, uid, short.ID)
		assert.NoError(t, err)
	}
	assert.NoError(t, env.actionSvc.RecordView(ctx, short.ID))

	t.Run("RepairsDriftedCounters", func(t *testing.T) {
		// 人为制造冗余计数漂移，对账后应回到台账基数
		assert.NoError(t, env.db.Model(&model.Short{}).Where("id = ?", short.ID).
			Update("likes_count", 99).Error)

		assert.NoError(t, env.metricSvc.SyncShortMetric(ctx, short.ID))

		fetched, err := env.shortRepo.GetShort(ctx, short.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), fetched.LikesCount)
	})

	t.Run("WritesDailySnapshot", func(t *testing.T) {
		points, err := env.metricSvc.GetMetrics7Days(ctx, short.ID)
		assert.NoError(t, err)
		assert.Len(t, points, 1)
		assert.Equal(t, int64(3), points[0].TotalLikes)
		assert.Equal(t, int64(1), points[0].TotalViews)
	})

	t.Run("UpsertSameDay", func(t *testing.T) {
		// 同日重复对账只保留一行快照
		_, err := env.actionSvc.ToggleLike(ctx, 9, short.ID)
		assert.NoError(t, err)
		assert.NoError(t, env.metricSvc.SyncShortMetric(ctx, short.ID))

		points, err := env.metricSvc.GetMetrics30Days(ctx, short.ID)
		assert.NoError(t, err)
		assert.Len(t, points, 1)
		assert.Equal(t, int64(4), points[0].TotalLikes)
	})
}
