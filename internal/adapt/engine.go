// Package adapt rewrites catalog content toward a target difficulty level
// using the generation backend, with cache and graceful degradation.
package adapt

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/dsangels/aiengine/internal/cache"
	"github.com/dsangels/aiengine/internal/llm"
	"github.com/dsangels/aiengine/internal/store"
)

// Config holds adaptation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig keeps temperature low so adapted content stays stable
// across regenerations.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.4,
	}
}

// Adaptation is the result of a difficulty adaptation. A failed adaptation
// carries the original content with Adapted=false and Err set; it is never
// surfaced as a hard failure.
type Adaptation struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	OriginalDifficulty int    `json:"original_difficulty"`
	TargetDifficulty   int    `json:"target_difficulty"`
	Adapted            bool   `json:"adapted"`
	Err                error  `json:"-"`
}

// Engine adapts content difficulty.
type Engine struct {
	catalog store.CatalogRepo
	cache   cache.Cache
	client  *llm.Client
	cfg     Config
	log     *zap.Logger
}

// NewEngine creates an adaptation engine.
func NewEngine(catalog store.CatalogRepo, c cache.Cache, client *llm.Client, cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: catalog, cache: c, client: client, cfg: cfg, log: log}
}

// Adapt rewrites the content's title and description at targetDifficulty
// (1-5). Content at the target difficulty already is returned unchanged
// with Adapted=false. Every failure path degrades to the original content.
func (e *Engine) Adapt(ctx context.Context, contentID string, targetDifficulty int) Adaptation {
	if targetDifficulty < 1 || targetDifficulty > 5 {
		return Adaptation{
			TargetDifficulty: targetDifficulty,
			Err:              fmt.Errorf("target difficulty %d out of range [1,5]", targetDifficulty),
		}
	}

	content, err := e.catalog.ContentByID(ctx, contentID)
	if err != nil {
		e.log.Warn("adaptation content lookup failed", zap.String("content", contentID), zap.Error(err))
		return Adaptation{TargetDifficulty: targetDifficulty, Err: err}
	}

	// Exact match needs no generation.
	if content.DifficultyBase == targetDifficulty {
		return Adaptation{
			Title:              content.Title,
			Description:        content.Description,
			OriginalDifficulty: content.DifficultyBase,
			TargetDifficulty:   targetDifficulty,
			Adapted:            false,
		}
	}

	key := cache.Key("adapted_content", contentID, fmt.Sprintf("%d", targetDifficulty))
	if cached, ok := e.cache.Get(ctx, key); ok {
		if a, err := decodeAdaptation(cached); err == nil {
			return a
		}
		// A corrupt entry falls through to regeneration.
		e.log.Warn("discarding corrupt cached adaptation", zap.String("key", key))
	}

	res := e.client.Text(ctx, llm.GenerateRequest{
		Prompt:      buildAdaptPrompt(content, targetDifficulty),
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if res.Degraded {
		return Adaptation{
			Title:              content.Title,
			Description:        content.Description,
			OriginalDifficulty: content.DifficultyBase,
			TargetDifficulty:   targetDifficulty,
			Adapted:            false,
			Err:                res.Err,
		}
	}

	title, description := parseAdaptation(res.Text, content.Title)

	result := Adaptation{
		Title:              title,
		Description:        description,
		OriginalDifficulty: content.DifficultyBase,
		TargetDifficulty:   targetDifficulty,
		Adapted:            true,
	}

	if encoded, err := json.Marshal(result); err == nil {
		e.cache.Set(ctx, key, string(encoded), cache.DefaultTTL)
	}

	return result
}

func decodeAdaptation(raw string) (Adaptation, error) {
	var a Adaptation
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return Adaptation{}, err
	}
	if a.Title == "" && a.Description == "" {
		return Adaptation{}, fmt.Errorf("empty cached adaptation")
	}
	return a, nil
}
