package wire

import (
	"Biteflow/internal/api"
	"Biteflow/internal/api/config"
	"Biteflow/internal/api/handler"
	"Biteflow/internal/job"
	"Biteflow/internal/pkg/cron"
	"Biteflow/internal/repository"
	"Biteflow/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	shortRepo := repository.NewShortRepository(db)
	actionRepo := repository.NewShortActionRepo(db)
	restaurantRepo := repository.NewRestaurantRepo(db)
	metricRepo := repository.NewShortMetricRepository(db)

	shortService := service.NewShortService(shortRepo, actionRepo, restaurantRepo)
	feedService := service.NewShortFeedService(shortRepo, actionRepo)
	actionService := service.NewShortActionService(actionRepo, shortRepo)
	metricService := service.NewShortMetricService(metricRepo, shortRepo, actionRepo)

	handlers := &api.HandlersGroup{
		ShortHandler:       handler.NewShortHandler(shortService, feedService),
		ShortActionHandler: handler.NewShortActionHandler(actionService),
		ShortMetricHandler: handler.NewShortMetricHandler(metricService),
		MediaHandler:       handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	metricsJob := job.NewShortMetricsJob(shortRepo, metricService)
	cronMgr := cron.NewCronManager(metricsJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
