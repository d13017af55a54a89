package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that records every backend call.
// Prompts are logged by length only; credentials never appear here.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with structured request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) GenerateText(ctx context.Context, req GenerateRequest) (string, error) {
	start := time.Now()
	text, err := l.inner.GenerateText(ctx, req)

	fields := []zap.Field{
		zap.String("model", l.inner.ModelID()),
		zap.Int("prompt_len", len(req.Prompt)),
		zap.Int("max_tokens", req.MaxTokens),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	}
	if err != nil {
		l.log.Warn("generation failed", append(fields, zap.Error(err))...)
	} else {
		l.log.Debug("generation ok", append(fields, zap.Int("reply_len", len(text)))...)
	}

	return text, err
}

func (l *LoggingProvider) Classify(ctx context.Context, content string, categories []string) (map[string]float64, error) {
	start := time.Now()
	scores, err := l.inner.Classify(ctx, content, categories)

	fields := []zap.Field{
		zap.String("model", l.inner.ModelID()),
		zap.Int("categories", len(categories)),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	}
	if err != nil {
		l.log.Warn("classification failed", append(fields, zap.Error(err))...)
	} else {
		l.log.Debug("classification ok", fields...)
	}

	return scores, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
