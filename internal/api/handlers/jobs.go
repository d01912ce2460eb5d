package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"jobtrack-utils/internal/logging"
	"jobtrack-utils/internal/store"
	"jobtrack-utils/pkg/models"
	"jobtrack-utils/pkg/utils"
)

// ListJobsHandler handles GET /api/v1/jobs with an optional ?status= filter
func ListJobsHandler(jobStore *store.SQLiteStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		status := c.QueryParam("status")
		if status != "" && !utils.Contains(models.ValidStatuses, status) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "unknown status filter: " + status,
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		jobs, err := jobStore.List(status)
		if err != nil {
			logging.LogWithRequestID(requestID).Error("Failed to list jobs", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "store_failed",
				Message:   "Failed to list job applications",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, jobs)
	}
}

// CreateJobHandler handles POST /api/v1/jobs
func CreateJobHandler(jobStore *store.SQLiteStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.JobCreate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		job, err := jobStore.Create(req)
		if err != nil {
			logger.Error("Failed to create job", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "store_failed",
				Message:   "Failed to create job application",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Job application created", map[string]interface{}{
			"job_id":   job.ID,
			"company":  job.Company,
			"position": job.Position,
		})

		return c.JSON(http.StatusCreated, job)
	}
}

// GetJobHandler handles GET /api/v1/jobs/:id
func GetJobHandler(jobStore *store.SQLiteStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		id, err := parseJobID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid job ID",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		job, err := jobStore.GetByID(id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   "Job application not found",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "store_failed",
				Message:   "Failed to fetch job application",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, job)
	}
}

// UpdateJobHandler handles PUT /api/v1/jobs/:id with a partial update payload
func UpdateJobHandler(jobStore *store.SQLiteStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		id, err := parseJobID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid job ID",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		var req models.JobUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		job, err := jobStore.Update(id, req)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   "Job application not found",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err != nil {
			logger.Error("Failed to update job", map[string]interface{}{"error": err.Error(), "job_id": id})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "store_failed",
				Message:   "Failed to update job application",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, job)
	}
}

// DeleteJobHandler handles DELETE /api/v1/jobs/:id
func DeleteJobHandler(jobStore *store.SQLiteStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		id, err := parseJobID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid job ID",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		err = jobStore.Delete(id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   "Job application not found",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "store_failed",
				Message:   "Failed to delete job application",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func parseJobID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
