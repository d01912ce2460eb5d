package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobtrack-utils/internal/llm"
	"jobtrack-utils/internal/logging"
	"jobtrack-utils/pkg/models"
	"jobtrack-utils/pkg/utils"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests
func ReadinessHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api": "ok",
			"llm": "ok",
		}

		if !llmManager.IsHealthy() {
			// Analysis endpoints will fail, but CRUD still works
			checks["llm"] = "unavailable"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status
func StatusHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":      "JobTrack Utils",
			"version":      version,
			"status":       "running",
			"uptime":       utils.FormatDuration(time.Since(startTime)),
			"llm_provider": llmManager.GetProviderName(),
			"llm_healthy":  llmManager.IsHealthy(),
		})
	}
}
