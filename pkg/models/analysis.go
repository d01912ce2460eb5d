package models

// ScoreReport is the structured verdict of scoring a resume against a job
// description. The score is whatever the generator claimed; it is not clamped
// or range-checked here.
type ScoreReport struct {
	Score           int      `json:"score"`
	MissingKeywords []string `json:"missing_keywords"`
	Suggestions     []string `json:"suggestions"`
	Summary         string   `json:"summary"`
}
