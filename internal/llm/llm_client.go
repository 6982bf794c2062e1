package llm

import (
	"context"
	"fmt"
	"time"
)

// Client is the boundary to the external narrative collaborator. The core
// hands it a prompt string and takes back an opaque string; nothing in the
// scoring pipeline depends on the result being present or well formed.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Config parameterizes a Client. It is built by the caller (config file plus
// environment) and passed in explicitly; clients never read ambient process
// state themselves, which keeps them swappable in tests.
type Config struct {
	// Provider selects the implementation: "gemini", "ollama" or "mock".
	Provider string
	// APIKey authenticates against hosted providers (Gemini).
	APIKey string
	// BaseURL points at a self-hosted endpoint (Ollama).
	BaseURL string
	// Model is the provider-specific model ID.
	Model string
	// Timeout bounds a single generation call.
	Timeout time.Duration
}

// NewClient builds a Client for the configured provider.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(ctx, cfg)
	case "ollama":
		return NewOllamaClient(cfg), nil
	case "mock":
		return NewMockClient(), nil
	}
	return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
}
