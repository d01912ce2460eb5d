package models

import "time"

// Job statuses a tracked application can move through.
const (
	StatusWishlist     = "wishlist"
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffer        = "offer"
	StatusRejected     = "rejected"
)

// ValidStatuses lists every status accepted by the API and the store.
var ValidStatuses = []string{
	StatusWishlist,
	StatusApplied,
	StatusInterviewing,
	StatusOffer,
	StatusRejected,
}

// JobApplication represents a tracked job application record
type JobApplication struct {
	ID        int64     `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Location  string    `json:"location,omitempty"`
	JobURL    string    `json:"job_url,omitempty"`
	SalaryMin *int      `json:"salary_min,omitempty"`
	SalaryMax *int      `json:"salary_max,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	DateAdded time.Time `json:"date_added"`
}

// JobCreate is the payload for creating a job application record
type JobCreate struct {
	Company   string `json:"company" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Location  string `json:"location,omitempty"`
	JobURL    string `json:"job_url,omitempty" validate:"omitempty,url"`
	SalaryMin *int   `json:"salary_min,omitempty"`
	SalaryMax *int   `json:"salary_max,omitempty"`
	Status    string `json:"status,omitempty" validate:"omitempty,job_status"`
	Notes     string `json:"notes,omitempty"`
}

// JobUpdate is the payload for a partial update of a job application record.
// Nil fields are left unchanged.
type JobUpdate struct {
	Company   *string `json:"company,omitempty"`
	Position  *string `json:"position,omitempty"`
	Location  *string `json:"location,omitempty"`
	JobURL    *string `json:"job_url,omitempty" validate:"omitempty,url"`
	SalaryMin *int    `json:"salary_min,omitempty"`
	SalaryMax *int    `json:"salary_max,omitempty"`
	Status    *string `json:"status,omitempty" validate:"omitempty,job_status"`
	Notes     *string `json:"notes,omitempty"`
}
