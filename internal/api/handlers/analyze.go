package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobtrack-utils/internal/analysis"
	"jobtrack-utils/internal/api/validation"
	"jobtrack-utils/internal/logging"
	"jobtrack-utils/pkg/models"
	"jobtrack-utils/pkg/utils"
)

var validate = validator.New()

func init() {
	validation.RegisterJobValidators(validate)
}

// ScoreResumeHandler handles POST /api/v1/analyze/score
func ScoreResumeHandler(service *analysis.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Resume scoring request received")

		var req models.ScoreRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		report, err := service.ScoreResume(c.Request().Context(), req.ResumeText, req.JobDescription)
		if err != nil {
			// Upstream generation failure; malformed responses never land here
			logger.Error("Resume scoring failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "generation_failed",
				Message:   utils.NewLLMError(err.Error()).Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Resume scoring request completed", map[string]interface{}{
			"score":           report.Score,
			"processing_time": time.Since(startTime),
		})

		return c.JSON(http.StatusOK, models.ScoreResponse{
			Success:        true,
			Report:         report,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// CoverLetterHandler handles POST /api/v1/analyze/cover-letter
func CoverLetterHandler(service *analysis.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Cover letter request received")

		var req models.CoverLetterRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		letter, err := service.GenerateCoverLetter(c.Request().Context(),
			req.ResumeText, req.JobDescription, req.CompanyName, req.Tone)
		if err != nil {
			logger.Error("Cover letter generation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "generation_failed",
				Message:   utils.NewLLMError(err.Error()).Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Cover letter request completed", map[string]interface{}{
			"company":         req.CompanyName,
			"processing_time": time.Since(startTime),
		})

		return c.JSON(http.StatusOK, models.CoverLetterResponse{
			Success:        true,
			CoverLetter:    letter,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}
