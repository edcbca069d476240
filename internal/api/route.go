package api

import (
	"Biteflow/internal/api/middleware"
	"Biteflow/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		shortGroup := apiGroup.Group("/shorts")
		{
			authOptGroup := shortGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/feed", group.ShortHandler.GetFeed)
				authOptGroup.GET("/restaurant/:restaurant_id", group.ShortHandler.GetRestaurantFeed)
				authOptGroup.GET("/detail/:short_id", group.ShortHandler.GetShort)
			}

			authGroup := shortGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("RESTAURANT", "ADMIN"))
			{
				authGroup.POST("", group.ShortHandler.CreateShort)
				authGroup.DELETE("/:short_id", group.ShortHandler.DeleteShort)
				authGroup.PUT("/:short_id/pause", group.ShortHandler.SetPaused)
			}
		}

		actionGroup := apiGroup.Group("/short/action")
		{
			actionGroup.GET("/comments/:short_id", group.ShortActionHandler.GetComments)
			actionGroup.POST("/views/:short_id", group.ShortActionHandler.RecordView)

			authOptGroup := actionGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/state/:short_id", group.ShortActionHandler.GetEngagementState)
			}

			authActionGroup := actionGroup.Group("")
			authActionGroup.Use(middleware.AuthMiddleware())
			{
				authActionGroup.POST("/likes/:short_id", group.ShortActionHandler.ToggleLike)
				authActionGroup.POST("/comments", group.ShortActionHandler.CreateComment)
			}
		}

		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.Use(middleware.AuthMiddleware())
			{
				metricsGroup.GET("/short/7d/:short_id", group.ShortMetricHandler.GetMetrics7Days)
				metricsGroup.GET("/short/30d/:short_id", group.ShortMetricHandler.GetMetrics30Days)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
