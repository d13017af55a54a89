package llm

import (
	"context"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware. An unknown provider tag is a typed error, never
// a silent fallback to the mock backend.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg)
	case "openai":
		base, err = NewOpenAIProvider(cfg)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, &ErrUnknownProvider{Provider: cfg.Provider}
	}
	if err != nil {
		return nil, err
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, log)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// ModelInfo describes the configured backend for introspection endpoints.
type ModelInfo struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Mock     bool   `json:"is_mock"`
}

// Describe reports the configured backend. The mock discriminant comes
// from configuration, not runtime type inspection.
func Describe(cfg Config, p Provider) ModelInfo {
	return ModelInfo{
		Provider: cfg.Provider,
		Model:    p.ModelID(),
		Mock:     cfg.Provider == "mock",
	}
}
