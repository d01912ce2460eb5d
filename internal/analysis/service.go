package analysis

import (
	"context"
	"fmt"
	"time"

	"jobtrack-utils/internal/config"
	"jobtrack-utils/internal/logging"
	"jobtrack-utils/pkg/models"
)

// DefaultTone is applied when a cover letter request leaves the tone empty.
const DefaultTone = "professional"

// Generator is the slice of the generation backend the analysis service needs.
// Satisfied by *llm.Manager; tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Service composes prompt building, generation and response interpretation
// into the two analysis operations. It is stateless: every call is an
// independent single-shot request with no caching and no retry. Deadlines are
// the caller's responsibility via ctx.
type Service struct {
	config    *config.Config
	generator Generator
	logger    logging.Logger
}

// NewService creates an analysis service backed by the given generator
func NewService(cfg *config.Config, generator Generator) *Service {
	return &Service{
		config:    cfg,
		generator: generator,
		logger:    logging.GetGlobalLogger(),
	}
}

// ScoreResume scores resumeText against jobDescription and returns a fully
// populated ScoreReport. A malformed generator response never fails the call:
// it degrades into the sentinel report with the raw text preserved in the
// summary. Only upstream generation failures (network, auth, rate limit,
// backend error) propagate as errors.
func (s *Service) ScoreResume(ctx context.Context, resumeText, jobDescription string) (*models.ScoreReport, error) {
	startTime := time.Now()

	prompt := BuildScorePrompt(resumeText, jobDescription)

	rawText, err := s.generator.Generate(ctx, prompt, s.config.LLM.ScoreMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("resume scoring generation failed: %w", err)
	}

	report, parseErr := ParseScoreReport(rawText)
	if parseErr != nil {
		s.logger.Warn("Generator returned malformed score response, falling back to sentinel report", map[string]interface{}{
			"error":           parseErr.Error(),
			"response_length": len(rawText),
		})
		report = SentinelScoreReport(rawText)
	}

	s.logger.Info("Resume scoring completed", map[string]interface{}{
		"score":            report.Score,
		"missing_keywords": len(report.MissingKeywords),
		"recovered":        parseErr != nil,
		"processing_time":  time.Since(startTime),
	})

	return report, nil
}

// GenerateCoverLetter drafts a cover letter for the candidate applying to
// companyName. The generator's text is returned unmodified; free text has no
// malformed shape to recover from. An empty tone defaults to "professional".
func (s *Service) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, companyName, tone string) (string, error) {
	startTime := time.Now()

	if tone == "" {
		tone = DefaultTone
	}

	prompt := BuildCoverLetterPrompt(resumeText, jobDescription, companyName, tone)

	letter, err := s.generator.Generate(ctx, prompt, s.config.LLM.LetterMaxTokens)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}

	s.logger.Info("Cover letter generation completed", map[string]interface{}{
		"company":         companyName,
		"tone":            tone,
		"letter_length":   len(letter),
		"processing_time": time.Since(startTime),
	})

	return letter, nil
}
