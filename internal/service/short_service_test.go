package service

import (
	"Biteflow/internal/api/dto"
	"Biteflow/internal/model"
	"Biteflow/internal/pkg/consts"
	"Biteflow/internal/repository"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db             *gorm.DB
	shortRepo      repository.ShortRepo
	actionRepo     repository.ShortActionRepo
	restaurantRepo repository.RestaurantRepo
	metricRepo     repository.ShortMetricRepo

	shortSvc  ShortService
	feedSvc   ShortFeedService
	actionSvc ShortActionService
	metricSvc ShortMetricService
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Restaurant{},
		&model.Short{},
		&model.ShortLike{},
		&model.ShortComment{},
		&model.ShortDailyMetric{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	env := &testEnv{db: db}
	env.shortRepo = repository.NewShortRepository(db)
	env.actionRepo = repository.NewShortActionRepo(db)
	env.restaurantRepo = repository.NewRestaurantRepo(db)
	env.metricRepo = repository.NewShortMetricRepository(db)

	env.shortSvc = NewShortService(env.shortRepo, env.actionRepo, env.restaurantRepo)
	env.feedSvc = NewShortFeedService(env.shortRepo, env.actionRepo)
	env.actionSvc = NewShortActionService(env.actionRepo, env.shortRepo)
	env.metricSvc = NewShortMetricService(env.metricRepo, env.shortRepo, env.actionRepo)
	return env
}

func (e *testEnv) seedRestaurant(t *testing.T, ownerID uint64) *model.Restaurant {
	restaurant := &model.Restaurant{OwnerUserID: ownerID, Name: "测试餐厅", LogoURL: "logo.png"}
	if err := e.db.Create(restaurant).Error; err != nil {
		t.Fatalf("Failed to seed restaurant: %v", err)
	}
	return restaurant
}

func (e *testEnv) seedShort(t *testing.T, short *model.Short) *model.Short {
	if err := e.shortRepo.CreateShort(context.Background(), short); err != nil {
		t.Fatalf("Failed to seed short: %v", err)
	}
	return short
}

func validCreateReq(restaurantID uint64) *dto.ShortCreateDTO {
	return &dto.ShortCreateDTO{
		RestaurantID:  restaurantID,
		Title:         "今日招牌",
		Description:   "新鲜出炉",
		MediaURL:      "2026/03/01/demo.mp4",
		DurationHours: 24,
	}
}

func TestCreateShort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	restaurant := env.seedRestaurant(t, 100)

	t.Run("Success", func(t *testing.T) {
		short, err := env.shortSvc.CreateShort(ctx, 100, validCreateReq(restaurant.ID))
		assert.NoError(t, err)
		assert.Equal(t, string(model.ShortStatusActive), short.Status)
		assert.Equal(t, restaurant.ID, short.RestaurantID)
		assert.Equal(t, restaurant.Name, short.RestaurantName)
		assert.NotZero(t, short.ID)
	})

	t.Run("RestaurantMissing", func(t *testing.T) {
		_, err := env.shortSvc.CreateShort(ctx, 100, validCreateReq(99999))
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})

	t.Run("NotOwnerForbidden", func(t *testing.T) {
		_, err := env.shortSvc.CreateShort(ctx, 200, validCreateReq(restaurant.ID))
		assert.ErrorIs(t, err, ForbiddenError)
	})

	t.Run("DurationOutsideAllowedSet", func(t *testing.T) {
		req := validCreateReq(restaurant.ID)
		req.DurationHours = 7
		_, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.ErrorIs(t, err, ErrDurationInvalid)

		req.DurationHours = 0
		_, err = env.shortSvc.CreateShort(ctx, 100, req)
		assert.ErrorIs(t, err, ErrDurationInvalid)
	})

	t.Run("TitleEmpty", func(t *testing.T) {
		req := validCreateReq(restaurant.ID)
		req.Title = ""
		_, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.ErrorIs(t, err, ErrParamInvalid)
	})

	t.Run("TitleTooLong", func(t *testing.T) {
		req := validCreateReq(restaurant.ID)
		req.Title = strings.Repeat("辣", 300)
		_, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.ErrorIs(t, err, ErrParamInvalid)

		var count int64
		assert.NoError(t, env.db.Model(&model.Short{}).Where("title = ?", req.Title).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("DescriptionTooLong", func(t *testing.T) {
		req := validCreateReq(restaurant.ID)
		req.Description = strings.Repeat("a", 2000)
		_, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.ErrorIs(t, err, ErrParamInvalid)
	})

	t.Run("PermanentIgnoresDuration", func(t *testing.T) {
		req := validCreateReq(restaurant.ID)
		req.IsPermanent = true
		req.DurationHours = 7
		short, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.NoError(t, err)
		assert.True(t, short.IsPermanent)
		assert.Equal(t, string(model.ShortStatusActive), short.Status)
	})

	t.Run("ScheduledPublish", func(t *testing.T) {
		publishAt := time.Now().Add(2 * time.Hour).Format(time.RFC3339)
		req := validCreateReq(restaurant.ID)
		req.PublishAt = &publishAt
		short, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.NoError(t, err)
		assert.Equal(t, string(model.ShortStatusScheduled), short.Status)
	})

	t.Run("PublishAtInPast", func(t *testing.T) {
		publishAt := time.Now().Add(-time.Hour).Format(time.RFC3339)
		req := validCreateReq(restaurant.ID)
		req.PublishAt = &publishAt
		_, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.ErrorIs(t, err, ErrPublishTimeInvalid)
	})

	t.Run("PublishAtBeyondWindow", func(t *testing.T) {
		publishAt := time.Now().Add((consts.MaxPublishDelayHours + 1) * time.Hour).Format(time.RFC3339)
		req := validCreateReq(restaurant.ID)
		req.PublishAt = &publishAt
		_, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.ErrorIs(t, err, ErrPublishTimeInvalid)
	})

	t.Run("PublishAtMalformed", func(t *testing.T) {
		publishAt := "tomorrow noon"
		req := validCreateReq(restaurant.ID)
		req.PublishAt = &publishAt
		_, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.ErrorIs(t, err, ErrParamInvalid)
	})
}

func TestCreateShortQuotaExceeded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	restaurant := env.seedRestaurant(t, 100)

	for i := 0; i < consts.MaxPermanentShorts; i++ {
		req := validCreateReq(restaurant.ID)
		req.IsPermanent = true
		_, err := env.shortSvc.CreateShort(ctx, 100, req)
		assert.NoError(t, err)
	}

	req := validCreateReq(restaurant.ID)
	req.IsPermanent = true
	_, err := env.shortSvc.CreateShort(ctx, 100, req)
	assert.ErrorIs(t, err, ErrShortQuotaExceeded)

	// 限时短视频不受配额限制
	_, err = env.shortSvc.CreateShort(ctx, 100, validCreateReq(restaurant.ID))
	assert.NoError(t, err)
}

func TestGetShort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	restaurant := env.seedRestaurant(t, 100)

	t.Run("ExpiredStillRetrievable", func(t *testing.T) {
		short := env.seedShort(t, &model.Short{
			RestaurantID:  restaurant.ID,
			Title:         "昨日特惠",
			MediaURL:      "old.mp4",
			DurationHours: 6,
			CreatedAt:     time.Now().Add(-12 * time.Hour),
		})

		fetched, err := env.shortSvc.GetShort(ctx, 0, short.ID)
		assert.NoError(t, err)
		assert.Equal(t, string(model.ShortStatusExpired), fetched.Status)
	})

	t.Run("DeletedNotFound", func(t *testing.T) {
		short := env.seedShort(t, &model.Short{
			RestaurantID: restaurant.ID,
			Title:        "已下架",
			MediaURL:     "gone.mp4",
			IsPermanent:  true,
		})
		assert.NoError(t, env.shortSvc.DeleteShort(ctx, 100, short.ID))

		_, err := env.shortSvc.GetShort(ctx, 0, short.ID)
		assert.ErrorIs(t, err, ErrShortNotFound)
	})

	t.Run("MissingNotFound", func(t *testing.T) {
		_, err := env.shortSvc.GetShort(ctx, 0, 99999)
		assert.ErrorIs(t, err, ErrShortNotFound)
	})
}

func TestDeleteShort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	restaurant := env.seedRestaurant(t, 100)
	short := env.seedShort(t, &model.Short{
		RestaurantID: restaurant.ID,
		Title:        "招牌菜",
		MediaURL:     "media.mp4",
		IsPermanent:  true,
	})

	t.Run("NotOwnerForbidden", func(t *testing.T) {
		err := env.shortSvc.DeleteShort(ctx, 200, short.ID)
		assert.ErrorIs(t, err, ForbiddenError)
	})

	t.Run("OwnerDeletes", func(t *testing.T) {
		assert.NoError(t, env.shortSvc.DeleteShort(ctx, 100, short.ID))

		// 已删除即不存在，重复删除同样报不存在
		err := env.shortSvc.DeleteShort(ctx, 100, short.ID)
		assert.ErrorIs(t, err, ErrShortNotFound)
	})
}

func TestSetShortPaused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	restaurant := env.seedRestaurant(t, 100)
	short := env.seedShort(t, &model.Short{
		RestaurantID:  restaurant.ID,
		Title:         "限时上新",
		MediaURL:      "media.mp4",
		DurationHours: 24,
	})

	t.Run("NotOwnerForbidden", func(t *testing.T) {
		_, err := env.shortSvc.SetShortPaused(ctx, 200, short.ID, true)
		assert.ErrorIs(t, err, ForbiddenError)
	})

	t.Run("PauseReadsExpired", func(t *testing.T) {
		paused, err := env.shortSvc.SetShortPaused(ctx, 100, short.ID, true)
		assert.NoError(t, err)
		assert.True(t, paused.IsPaused)
		assert.Equal(t, string(model.ShortStatusExpired), paused.Status)
	})

	t.Run("ResumeBeforeWindowLapse", func(t *testing.T) {
		resumed, err := env.shortSvc.SetShortPaused(ctx, 100, short.ID, false)
		assert.NoError(t, err)
		assert.False(t, resumed.IsPaused)
		assert.Equal(t, string(model.ShortStatusActive), resumed.Status)
	})
}
