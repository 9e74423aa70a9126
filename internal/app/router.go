package app

import (
	"adaptive_tutor_backend/internal/config"
	"adaptive_tutor_backend/pkg/monitoring"
	"adaptive_tutor_backend/pkg/security"
	"time"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/numerology", c.numerology.Analyze)

		settings := api.Group("/settings")
		{
			settings.GET("/api-key", c.settings.GetAPIKey)
			settings.PUT("/api-key", c.settings.PutAPIKey)
			settings.DELETE("/api-key", c.settings.DeleteAPIKey)
		}

		profiles := api.Group("/profiles")
		{
			profiles.POST("", c.profile.Create)
			profiles.GET("/:id", c.profile.Get)
			profiles.GET("/:id/performance", c.profile.Performance)
			profiles.POST("/:id/quiz-results", c.profile.RecordQuizResult)
			profiles.GET("/:id/chat", c.chat.History)
		}

		a.registerGenerationRoutes(profiles, c, cfg)
	}
}

// registerGenerationRoutes mounts every route that calls the generation
// service behind a per-IP limiter.
func (a *App) registerGenerationRoutes(profiles *gin.RouterGroup, c *controllers, cfg *config.Config) {
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	limited := profiles.Group("")
	limited.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window, a.stop))
	{
		limited.POST("/:id/learning-path", c.generation.LearningPath)
		limited.POST("/:id/units/:unitId/challenge", c.generation.Challenge)
		limited.POST("/:id/exam", c.generation.Exam)
		limited.GET("/:id/entertainment", c.generation.Entertainment)
		limited.POST("/:id/chat", c.chat.Send)
	}
}
