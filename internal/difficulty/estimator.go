// Package difficulty estimates the content difficulty a user is ready
// for, based on what they have already completed.
package difficulty

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/dsangels/aiengine/internal/store"
)

const (
	// completedThreshold marks a progress record as meaningfully done.
	completedThreshold = 75.0

	// masteryThreshold marks a record as near-perfect completion.
	masteryThreshold = 90.0

	// highPerformerRatio is the fraction of mastered completions that
	// earns a one-level difficulty boost.
	highPerformerRatio = 0.70
)

// Estimator derives a recommended difficulty level from progress history.
type Estimator struct {
	progress store.ProgressRepo
	log      *zap.Logger
}

func NewEstimator(progress store.ProgressRepo, log *zap.Logger) *Estimator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Estimator{progress: progress, log: log}
}

// Recommended returns a difficulty in [1,5] for the user: the rounded
// mean difficulty of their completed content, bumped one level for high
// performers. New users and any lookup failure get the floor of 1.
func (e *Estimator) Recommended(ctx context.Context, userID string) int {
	recs, err := e.progress.CompletedWithContent(ctx, userID, completedThreshold)
	if err != nil {
		e.log.Warn("difficulty estimate fell back to floor", zap.String("user_id", userID), zap.Error(err))
		return 1
	}

	var sum, n int
	var mastered int
	for _, rec := range recs {
		if rec.Content == nil {
			continue
		}
		sum += rec.Content.DifficultyBase
		n++
		if rec.CompletionPercentage >= masteryThreshold {
			mastered++
		}
	}
	if n == 0 {
		return 1
	}

	level := int(math.Round(float64(sum) / float64(n)))
	level = clamp(level, 1, 5)

	if float64(mastered)/float64(n) >= highPerformerRatio {
		level = clamp(level+1, 1, 5)
	}
	return level
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
