package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobtrack-utils/internal/analysis"
	"jobtrack-utils/internal/api/handlers"
	"jobtrack-utils/internal/api/middleware"
	"jobtrack-utils/internal/config"
	"jobtrack-utils/internal/llm"
	"jobtrack-utils/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, jobStore *store.SQLiteStore, analysisService *analysis.Service, llmManager *llm.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RateLimiterConfig(cfg.Server.RateLimit))
	// CRUD endpoints get the normal deadline; analysis endpoints carry their
	// own longer one below.
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Job application CRUD
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", handlers.ListJobsHandler(jobStore))
			jobs.POST("", handlers.CreateJobHandler(jobStore))
			jobs.GET("/:id", handlers.GetJobHandler(jobStore))
			jobs.PUT("/:id", handlers.UpdateJobHandler(jobStore))
			jobs.DELETE("/:id", handlers.DeleteJobHandler(jobStore))
		}

		// AI analysis routes
		analyze := v1.Group("/analyze")
		analyze.Use(middleware.TimeoutConfig(2 * time.Minute))
		{
			analyze.POST("/score", handlers.ScoreResumeHandler(analysisService))
			analyze.POST("/cover-letter", handlers.CoverLetterHandler(analysisService))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "JobTrack Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
