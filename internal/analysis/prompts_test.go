package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildScorePrompt_Deterministic(t *testing.T) {
	resume := "Python developer, 3 years"
	job := "Senior Python Engineer, AWS required"

	first := BuildScorePrompt(resume, job)
	second := BuildScorePrompt(resume, job)

	assert.Equal(t, first, second, "identical inputs must produce byte-identical prompts")
}

func TestBuildScorePrompt_EmbedsInputsVerbatim(t *testing.T) {
	prompt := BuildScorePrompt("resume with Go & <tags>", "job needing 100% effort")

	assert.Contains(t, prompt, "resume with Go & <tags>")
	assert.Contains(t, prompt, "job needing 100% effort")
}

func TestBuildScorePrompt_MandatesJSONContract(t *testing.T) {
	prompt := BuildScorePrompt("r", "j")

	assert.Contains(t, prompt, `"score"`)
	assert.Contains(t, prompt, `"missing_keywords"`)
	assert.Contains(t, prompt, `"suggestions"`)
	assert.Contains(t, prompt, `"summary"`)
	assert.Contains(t, prompt, "no markdown")
}

func TestBuildCoverLetterPrompt_EmbedsCompanyAndTone(t *testing.T) {
	prompt := BuildCoverLetterPrompt("my resume", "the job", "Acme Corp", "enthusiastic")

	assert.Contains(t, prompt, "Acme Corp")
	assert.Contains(t, prompt, "enthusiastic")
	assert.Contains(t, prompt, "my resume")
	assert.Contains(t, prompt, "the job")
	assert.Contains(t, prompt, "3-4 paragraphs")
}
