package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wellnest/backend/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler, log *logrus.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		nutrition := api.Group("/nutrition")
		{
			nutrition.GET("/search", handler.SearchFoods)
			nutrition.GET("/food/:id", handler.GetFoodDetails)
		}

		foodLog := api.Group("/log/:sessionId")
		{
			foodLog.POST("/entries", handler.AddLogEntry)
			foodLog.GET("/entries", handler.ListLogEntries)
			foodLog.DELETE("/entries/:id", handler.RemoveLogEntry)
			foodLog.GET("/totals", handler.GetDailyTotals)
		}

		wellness := api.Group("/wellness")
		{
			wellness.GET("/quote", handler.GetQuote)
			wellness.GET("/weather", handler.GetWeather)
			wellness.GET("/tips", handler.GetTips)
			wellness.GET("/mood/:mood/suggestions", handler.GetMoodSuggestions)
		}

		profile := api.Group("/profile")
		{
			profile.PUT("/:id", handler.PutProfile)
			profile.GET("/:id", handler.GetProfile)
		}
	}

	return router
}
