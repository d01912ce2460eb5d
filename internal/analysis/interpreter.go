package analysis

import (
	"encoding/json"

	"jobtrack-utils/pkg/models"
)

// SentinelSuggestion is the single suggestion carried by a fallback report.
const SentinelSuggestion = "Could not analyze - please try again"

// ParseScoreReport attempts a strict typed parse of rawText as a score report
// object. A response that is not valid JSON, or whose fields do not decode
// into (number, []string, []string, string), is an error; missing keys decode
// to zero values and are not an error. No range validation is applied to the
// score - out-of-range values pass through as parsed.
func ParseScoreReport(rawText string) (*models.ScoreReport, error) {
	var report models.ScoreReport
	if err := json.Unmarshal([]byte(rawText), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SentinelScoreReport builds the fixed fallback report for a response that
// could not be parsed. The raw text is preserved verbatim in Summary so an
// operator can inspect what the generator actually said.
func SentinelScoreReport(rawText string) *models.ScoreReport {
	return &models.ScoreReport{
		Score:           0,
		MissingKeywords: []string{},
		Suggestions:     []string{SentinelSuggestion},
		Summary:         rawText,
	}
}

// InterpretScoreResponse turns raw generator output into a ScoreReport. It is
// total: any input yields a fully populated report. Well-formed responses pass
// through exactly as parsed; everything else collapses into the sentinel.
func InterpretScoreResponse(rawText string) *models.ScoreReport {
	report, err := ParseScoreReport(rawText)
	if err != nil {
		return SentinelScoreReport(rawText)
	}
	return report
}
