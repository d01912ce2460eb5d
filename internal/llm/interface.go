package llm

import "context"

// Provider defines the interface for text generation backends. A provider is a
// single-shot collaborator: one prompt in, raw text out. No retries and no
// streaming happen at this boundary; transport failures surface as errors.
type Provider interface {
	// Generate sends prompt to the backend and returns the raw generated text,
	// capped at maxTokens output tokens.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
