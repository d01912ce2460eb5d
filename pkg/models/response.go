package models

import "time"

// ScoreResponse represents the response from a resume scoring request
type ScoreResponse struct {
	Success        bool          `json:"success"`
	Report         *ScoreReport  `json:"report,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// CoverLetterResponse represents the response from a cover letter request
type CoverLetterResponse struct {
	Success        bool          `json:"success"`
	CoverLetter    string        `json:"cover_letter,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
