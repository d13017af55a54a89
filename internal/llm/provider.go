package llm

import "context"

// Default generation parameters, applied when a request leaves them unset.
const (
	DefaultMaxTokens   = 200
	DefaultTemperature = 0.7
)

// Provider is the uniform abstraction over text-generation backends.
// Consumers depend only on this interface; concrete providers translate
// it to their own HTTP+JSON protocol.
type Provider interface {
	// GenerateText sends a prompt to the backend and returns the raw
	// text completion, trimmed of surrounding whitespace.
	GenerateText(ctx context.Context, req GenerateRequest) (string, error)

	// Classify scores content against the given categories and returns
	// a category→confidence mapping with scores in [0,1]. Providers
	// without a native classification endpoint implement this as
	// zero-shot classification over GenerateText.
	Classify(ctx context.Context, content string, categories []string) (map[string]float64, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// GenerateRequest describes a single text-generation call.
type GenerateRequest struct {
	// Prompt is the user prompt.
	Prompt string

	// System optionally sets the backend's role and constraints.
	System string

	// MaxTokens bounds the response length. Zero means DefaultMaxTokens.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero means DefaultTemperature.
	Temperature float64
}

// withDefaults fills unset request fields.
func (r GenerateRequest) withDefaults() GenerateRequest {
	if r.MaxTokens <= 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	if r.Temperature <= 0 {
		r.Temperature = DefaultTemperature
	}
	return r
}
