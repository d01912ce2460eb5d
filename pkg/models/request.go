package models

// ScoreRequest represents the request payload for scoring a resume against a
// job description
type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// CoverLetterRequest represents the request payload for generating a cover letter
type CoverLetterRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	CompanyName    string `json:"company_name" validate:"required"`
	Tone           string `json:"tone,omitempty"` // open set; defaults to "professional"
}
