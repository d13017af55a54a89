package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and parametrizes a generation backend.
type Config struct {
	// Provider selects which backend to use.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	// Model is a friendly model name or a raw provider model ID.
	Model string

	// APIKey is the provider credential. Never logged.
	APIKey string

	// BaseURL overrides the API endpoint for OpenAI-compatible providers.
	BaseURL string

	Retry RetryConfig

	// Timeout is the maximum duration for a single generation call
	// (including retries). Default: 30s.
	Timeout time.Duration
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "mock",
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. The credential is read from
// DSANGELS_AI_API_KEY first, then from the selected provider's standard
// variable (ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY,
// OPENROUTER_API_KEY).
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("DSANGELS_AI_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("DSANGELS_AI_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("DSANGELS_AI_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	if k := os.Getenv("DSANGELS_AI_API_KEY"); k != "" {
		cfg.APIKey = k
		return cfg
	}

	standard := map[string]string{
		"anthropic":  "ANTHROPIC_API_KEY",
		"openai":     "OPENAI_API_KEY",
		"gemini":     "GEMINI_API_KEY",
		"openrouter": "OPENROUTER_API_KEY",
	}
	if env, ok := standard[cfg.Provider]; ok {
		cfg.APIKey = os.Getenv(env)
	}

	return cfg
}

// Validate checks that the selected provider has its required credential.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini", "openrouter":
		if c.APIKey == "" {
			return &ErrBackendUnavailable{
				Provider: c.Provider,
				Err:      fmt.Errorf("API key is required"),
			}
		}
	case "mock":
		// No credential needed.
	default:
		return &ErrUnknownProvider{Provider: c.Provider}
	}
	return nil
}
