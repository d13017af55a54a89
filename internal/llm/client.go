package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// FallbackText is the degraded reply used when generation fails.
const FallbackText = "I couldn't generate a response at this time."

// TextResult is the outcome of a safe generation call. Degraded marks a
// fallback value; Err carries the contained failure so callers can
// distinguish genuine success from degradation.
type TextResult struct {
	Text     string
	Degraded bool
	Err      error
}

// ClassifyResult is the outcome of a safe classification call.
type ClassifyResult struct {
	Scores   map[string]float64
	Degraded bool
	Err      error
}

// Client is the safe facade over a Provider. Upstream outages never
// propagate past it: every failure is converted to a degraded result and
// a bounded deadline is applied to each call.
type Client struct {
	provider Provider
	log      *zap.Logger
	timeout  time.Duration
}

// NewClient creates a Client. A zero timeout means 30 seconds.
func NewClient(p Provider, log *zap.Logger, timeout time.Duration) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{provider: p, log: log, timeout: timeout}
}

// Text generates text, degrading to FallbackText on any failure.
func (c *Client) Text(ctx context.Context, req GenerateRequest) TextResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.provider.GenerateText(ctx, req)
	if err != nil {
		c.log.Warn("generation degraded to fallback", zap.Error(err))
		return TextResult{Text: FallbackText, Degraded: true, Err: err}
	}
	return TextResult{Text: text}
}

// Classify classifies content, degrading to an all-zero distribution on
// transport failure. Parse-level degradation (equal distribution) is
// handled inside the providers and reported here as success.
func (c *Client) Classify(ctx context.Context, content string, categories []string) ClassifyResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	scores, err := c.provider.Classify(ctx, content, categories)
	if err != nil {
		c.log.Warn("classification degraded to zero distribution", zap.Error(err))
		return ClassifyResult{Scores: ZeroDistribution(categories), Degraded: true, Err: err}
	}
	return ClassifyResult{Scores: scores}
}

// ModelID reports the underlying provider's model identifier.
func (c *Client) ModelID() string {
	return c.provider.ModelID()
}
