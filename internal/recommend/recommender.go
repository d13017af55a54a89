// Package recommend ranks catalog content for a user based on their
// progress history, always within the user's age group.
package recommend

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/dsangels/aiengine/internal/store"
)

// completedThreshold marks content as effectively finished; such items
// are never recommended again.
const completedThreshold = 80.0

// Recommendation is one ranked catalog entry.
type Recommendation struct {
	ContentID      string            `json:"content_id"`
	Title          string            `json:"title"`
	ContentType    store.ContentType `json:"content_type"`
	Difficulty     int               `json:"difficulty"`
	RelevanceScore int               `json:"relevance_score"`
}

// Recommender produces personalized content recommendations. Failures
// resolve to an empty list rather than an error; the caller's API layer
// treats no recommendations as a valid answer.
type Recommender struct {
	users    store.UserRepo
	catalog  store.CatalogRepo
	progress store.ProgressRepo
	log      *zap.Logger
}

func NewRecommender(users store.UserRepo, catalog store.CatalogRepo, progress store.ProgressRepo, log *zap.Logger) *Recommender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recommender{users: users, catalog: catalog, progress: progress, log: log}
}

// Recommend returns up to count items for the user, optionally filtered
// by contentType (empty means all types). Candidates are restricted to
// the user's age group, minus anything at or past the completion
// threshold. Ordering: started-but-unfinished items first, then higher
// relevance, then easier content, then newest.
func (r *Recommender) Recommend(ctx context.Context, userID string, count int, contentType store.ContentType) []Recommendation {
	if count <= 0 {
		return nil
	}

	user, err := r.users.ByID(ctx, userID)
	if err != nil {
		r.log.Warn("recommendation user lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	if user.AgeGroupID == nil {
		r.log.Warn("user has no age group", zap.String("user_id", userID))
		return nil
	}

	completedIDs, err := r.progress.ContentIDsByUser(ctx, userID, completedThreshold)
	if err != nil {
		r.log.Warn("recommendation progress lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	viewedIDs, err := r.progress.ContentIDsByUser(ctx, userID, 0)
	if err != nil {
		r.log.Warn("recommendation progress lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	completed := toSet(completedIDs)
	viewed := toSet(viewedIDs)

	candidates, err := r.catalog.ContentsByAgeGroup(ctx, *user.AgeGroupID, contentType)
	if err != nil {
		r.log.Warn("recommendation catalog lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}

	type scored struct {
		item       store.ContentItem
		inProgress int
		relevance  int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, item := range candidates {
		if completed[item.ID] {
			continue
		}
		s := scored{item: item, relevance: relevanceScore(item)}
		if viewed[item.ID] {
			s.inProgress = 10
		}
		ranked = append(ranked, s)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.inProgress != b.inProgress {
			return a.inProgress > b.inProgress
		}
		if a.relevance != b.relevance {
			return a.relevance > b.relevance
		}
		if a.item.DifficultyBase != b.item.DifficultyBase {
			return a.item.DifficultyBase < b.item.DifficultyBase
		}
		return a.item.CreatedAt.After(b.item.CreatedAt)
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}

	out := make([]Recommendation, len(ranked))
	for i, s := range ranked {
		out[i] = Recommendation{
			ContentID:      s.item.ID,
			Title:          s.item.Title,
			ContentType:    s.item.ContentType,
			Difficulty:     s.item.DifficultyBase,
			RelevanceScore: s.relevance + s.inProgress,
		}
	}
	return out
}

// relevanceScore is a coarse difficulty-affinity signal: easier content
// scores higher. Kept as a single function so the heuristic can be
// replaced without touching the ordering.
func relevanceScore(item store.ContentItem) int {
	if item.DifficultyBase <= 3 {
		return 5
	}
	return 1
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
