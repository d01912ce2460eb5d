package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"jobtrack-utils/internal/config"
	"jobtrack-utils/internal/logging"
)

// ClaudeProvider implements the generation provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Generate sends the prompt to Claude and returns the raw response text. The
// response is returned exactly as received: no code-fence stripping and no
// trimming, so the caller's parse-or-sentinel contract sees what the model
// actually said.
func (cp *ClaudeProvider) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	startTime := time.Now()

	cp.logger.Debug("Sending generation request to Claude", map[string]interface{}{
		"prompt_length": len(prompt),
		"max_tokens":    maxTokens,
		"provider":      "claude",
	})

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	// Get the text content from the first block of the response
	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	cp.logger.Debug("Claude generation completed", map[string]interface{}{
		"response_length": len(responseText),
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})

	return responseText, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	// Check if API key is configured
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	// Create a simple test request to check if the API is accessible
	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 500,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
