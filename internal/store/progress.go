package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ProgressRepo reads and updates user progress records.
type ProgressRepo interface {
	// ByUser lists all progress records for a user.
	ByUser(ctx context.Context, userID string) ([]UserProgress, error)

	// ContentIDsByUser returns the content IDs of the user's
	// content-linked progress records at or above minCompletion.
	// A minCompletion of 0 returns everything the user has viewed.
	ContentIDsByUser(ctx context.Context, userID string, minCompletion float64) ([]string, error)

	// CompletedWithContent returns content-linked records at or above
	// minCompletion with their ContentItem preloaded.
	CompletedWithContent(ctx context.Context, userID string, minCompletion float64) ([]UserProgress, error)

	// Upsert creates or updates the record for (user, content) or
	// (user, challenge). CompletionPercentage is monotonic: lower values
	// than the stored one are ignored.
	Upsert(ctx context.Context, rec *UserProgress) error
}

type progressRepo struct {
	db *gorm.DB
}

func (r *progressRepo) ByUser(ctx context.Context, userID string) ([]UserProgress, error) {
	var recs []UserProgress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return recs, nil
}

func (r *progressRepo) ContentIDsByUser(ctx context.Context, userID string, minCompletion float64) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&UserProgress{}).
		Where("user_id = ? AND content_id IS NOT NULL AND completion_percentage >= ?", userID, minCompletion).
		Pluck("content_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list progress content ids: %w", err)
	}
	return ids, nil
}

func (r *progressRepo) CompletedWithContent(ctx context.Context, userID string, minCompletion float64) ([]UserProgress, error) {
	var recs []UserProgress
	err := r.db.WithContext(ctx).
		Preload("Content").
		Where("user_id = ? AND content_id IS NOT NULL AND completion_percentage >= ?", userID, minCompletion).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list completed progress: %w", err)
	}
	return recs, nil
}

func (r *progressRepo) Upsert(ctx context.Context, rec *UserProgress) error {
	if rec.ContentID == nil && rec.ChallengeID == nil {
		return fmt.Errorf("progress record needs a content or challenge reference")
	}

	q := r.db.WithContext(ctx).Where("user_id = ?", rec.UserID)
	if rec.ContentID != nil {
		q = q.Where("content_id = ?", *rec.ContentID)
	} else {
		q = q.Where("challenge_id = ?", *rec.ChallengeID)
	}

	var existing UserProgress
	err := q.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if createErr := r.db.WithContext(ctx).Create(rec).Error; createErr != nil {
			return fmt.Errorf("create progress: %w", createErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetch progress: %w", err)
	}

	// Completion never decreases.
	if rec.CompletionPercentage > existing.CompletionPercentage {
		existing.CompletionPercentage = rec.CompletionPercentage
	}
	if rec.PointsEarned > existing.PointsEarned {
		existing.PointsEarned = rec.PointsEarned
	}
	if rec.CompletedAt != nil {
		existing.CompletedAt = rec.CompletedAt
	}
	if rec.DifficultyLevel > 0 {
		existing.DifficultyLevel = rec.DifficultyLevel
	}

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	*rec = existing
	return nil
}
