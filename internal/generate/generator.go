// Package generate produces themed concept explanations and challenge
// hints, consulting the result cache and curated content before calling
// the generation backend.
package generate

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/dsangels/aiengine/internal/cache"
	"github.com/dsangels/aiengine/internal/curated"
	"github.com/dsangels/aiengine/internal/llm"
	"github.com/dsangels/aiengine/internal/store"
)

// Generator answers explanation and hint requests. Lookups run in
// priority order: cache, curated content, backend generation. Every
// path returns usable text; backend failures degrade to a fallback
// message instead of an error.
type Generator struct {
	catalog store.CatalogRepo
	cache   cache.Cache
	curated *curated.Store
	client  *llm.Client
	log     *zap.Logger
}

func NewGenerator(catalog store.CatalogRepo, c cache.Cache, cur *curated.Store, client *llm.Client, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{catalog: catalog, cache: c, curated: cur, client: client, log: log}
}

// ExplanationRequest describes a themed concept explanation. Theme
// defaults to "general". BaseExplanation, when set, is given to the
// backend as material to enhance and doubles as the fallback text.
type ExplanationRequest struct {
	Concept         string
	Theme           string
	AgeGroup        string
	BaseExplanation string
}

// ThemedExplanation returns an explanation of the concept in the
// requested theme. Curated entries win over generation and are cached
// under the same key as generated text.
func (g *Generator) ThemedExplanation(ctx context.Context, req ExplanationRequest) string {
	if req.Theme == "" {
		req.Theme = "general"
	}

	key := cache.Key("themed_explanation", req.Concept, req.Theme, req.AgeGroup)
	if text, ok := g.cache.Get(ctx, key); ok {
		g.log.Debug("themed explanation cache hit", zap.String("key", key))
		return text
	}

	if text, ok := g.curated.LookupExplanation(req.Concept, req.Theme, req.AgeGroup); ok {
		g.cache.Set(ctx, key, text, cache.DefaultTTL)
		return text
	}

	res := g.client.Text(ctx, llm.GenerateRequest{
		Prompt:      buildExplanationPrompt(req),
		MaxTokens:   400,
		Temperature: 0.7,
	})
	if res.Degraded {
		g.log.Warn("themed explanation degraded",
			zap.String("concept", req.Concept),
			zap.Error(res.Err))
		if req.BaseExplanation != "" {
			return req.BaseExplanation
		}
		return fmt.Sprintf("Sorry, I couldn't generate a %s-themed explanation for %s right now.", req.Theme, req.Concept)
	}

	g.cache.Set(ctx, key, res.Text, cache.DefaultTTL)
	return res.Text
}

// HintRequest describes a hint lookup. Level ranges 1 (subtle) to 3
// (specific) and defaults to 1. A non-empty UserAttempt switches to the
// personalized path, which never reads or writes the cache.
type HintRequest struct {
	ChallengeID string
	UserAttempt string
	Level       int
}

// FallbackHint is returned when no hint can be produced at all.
const FallbackHint = "Try thinking about the problem step by step. What is the first thing you need to do?"

// Hint returns a hint for the challenge. Generic hints are cached per
// (challenge, level); personalized hints depend on the user's attempt
// and are regenerated every time.
func (g *Generator) Hint(ctx context.Context, req HintRequest) string {
	if req.Level < 1 {
		req.Level = 1
	}
	personalized := req.UserAttempt != ""

	key := cache.Key("hint", req.ChallengeID, strconv.Itoa(req.Level))
	if !personalized {
		if text, ok := g.cache.Get(ctx, key); ok {
			g.log.Debug("hint cache hit", zap.String("key", key))
			return text
		}
		if text, ok := g.curated.LookupHint(req.ChallengeID, req.Level); ok {
			g.cache.Set(ctx, key, text, cache.DefaultTTL)
			return text
		}
	}

	challenge, err := g.catalog.ChallengeByID(ctx, req.ChallengeID)
	if err != nil {
		g.log.Warn("hint challenge lookup failed",
			zap.String("challenge_id", req.ChallengeID),
			zap.Error(err))
		return FallbackHint
	}

	if personalized {
		res := g.client.Text(ctx, llm.GenerateRequest{
			Prompt:      buildPersonalizedHintPrompt(challenge, req.UserAttempt, req.Level),
			MaxTokens:   200,
			Temperature: 0.5,
		})
		if !res.Degraded {
			return res.Text
		}
		// Fall through to the generic path.
		g.log.Warn("personalized hint degraded",
			zap.String("challenge_id", req.ChallengeID),
			zap.Error(res.Err))
	}

	res := g.client.Text(ctx, llm.GenerateRequest{
		Prompt:      buildHintPrompt(challenge, req.Level),
		MaxTokens:   150,
		Temperature: 0.5,
	})
	if res.Degraded {
		g.log.Warn("hint degraded",
			zap.String("challenge_id", req.ChallengeID),
			zap.Error(res.Err))
		return FallbackHint
	}

	if !personalized {
		g.cache.Set(ctx, key, res.Text, cache.DefaultTTL)
	}
	return res.Text
}
