package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-utils/pkg/models"
)

func TestParseScoreReport_WellFormedResponse(t *testing.T) {
	raw := `{"score": 72, "missing_keywords": ["AWS"], "suggestions": ["Add AWS experience"], "summary": "Good match"}`

	report, err := ParseScoreReport(raw)
	require.NoError(t, err)

	assert.Equal(t, 72, report.Score)
	assert.Equal(t, []string{"AWS"}, report.MissingKeywords)
	assert.Equal(t, []string{"Add AWS experience"}, report.Suggestions)
	assert.Equal(t, "Good match", report.Summary)
}

func TestParseScoreReport_ScoreIsNotClamped(t *testing.T) {
	// Whether scores should be clamped to [0,100] is unspecified; the contract
	// is pass-through, so an out-of-range claim survives parsing untouched.
	report, err := ParseScoreReport(`{"score": 150, "missing_keywords": [], "suggestions": [], "summary": "suspicious"}`)
	require.NoError(t, err)
	assert.Equal(t, 150, report.Score)
}

func TestParseScoreReport_MistypedFieldsAreErrors(t *testing.T) {
	cases := map[string]string{
		"string score":       `{"score": "high", "missing_keywords": [], "suggestions": [], "summary": "s"}`,
		"scalar keywords":    `{"score": 10, "missing_keywords": "AWS", "suggestions": [], "summary": "s"}`,
		"object suggestions": `{"score": 10, "missing_keywords": [], "suggestions": {}, "summary": "s"}`,
		"numeric summary":    `{"score": 10, "missing_keywords": [], "suggestions": [], "summary": 3}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScoreReport(raw)
			assert.Error(t, err)
		})
	}
}

func TestInterpretScoreResponse_MalformedInputYieldsSentinel(t *testing.T) {
	cases := []string{
		"Sorry, I cannot help.",
		"",
		`{"score": 50, "missing_keywords": [`, // truncated mid-array
		"```json\n{\"score\": 50}\n```",       // fenced output violates the no-markdown contract
		"I'd rate this resume {\"score\": 80}",
	}

	for _, raw := range cases {
		report := InterpretScoreResponse(raw)

		assert.Equal(t, 0, report.Score)
		assert.Equal(t, []string{}, report.MissingKeywords)
		assert.Equal(t, []string{SentinelSuggestion}, report.Suggestions)
		assert.Equal(t, raw, report.Summary, "sentinel must preserve raw text verbatim")
	}
}

func TestInterpretScoreResponse_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"null",
		"[1,2,3]",
		`"just a string"`,
		strings.Repeat("{", 10000),
		string([]byte{0x00, 0xff, 0xfe}),
		strings.Repeat("a", 1<<20),
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			report := InterpretScoreResponse(input)
			assert.NotNil(t, report)
		})
	}
}

func TestInterpretScoreResponse_WellFormedPassThrough(t *testing.T) {
	raw := `{"score": 88, "missing_keywords": ["Go", "Kubernetes"], "suggestions": ["Mention Go"], "summary": "Strong"}`

	report := InterpretScoreResponse(raw)

	assert.Equal(t, &models.ScoreReport{
		Score:           88,
		MissingKeywords: []string{"Go", "Kubernetes"},
		Suggestions:     []string{"Mention Go"},
		Summary:         "Strong",
	}, report)
}
