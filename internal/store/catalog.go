package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// CatalogRepo reads the content catalog. Absence is a typed *ErrNotFound.
type CatalogRepo interface {
	// ContentByID fetches a single content item.
	ContentByID(ctx context.Context, id string) (*ContentItem, error)

	// ChallengeByID fetches a challenge with its ordered hints.
	ChallengeByID(ctx context.Context, id string) (*ChallengeItem, error)

	// ContentsByAgeGroup lists content for an age group, newest first.
	// An empty contentType means all types.
	ContentsByAgeGroup(ctx context.Context, ageGroupID string, contentType ContentType) ([]ContentItem, error)
}

type catalogRepo struct {
	db *gorm.DB
}

func (r *catalogRepo) ContentByID(ctx context.Context, id string) (*ContentItem, error) {
	var item ContentItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ErrNotFound{Kind: "content", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	return &item, nil
}

func (r *catalogRepo) ChallengeByID(ctx context.Context, id string) (*ChallengeItem, error) {
	var item ChallengeItem
	err := r.db.WithContext(ctx).
		Preload("Hints", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_number ASC")
		}).
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ErrNotFound{Kind: "challenge", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("fetch challenge: %w", err)
	}
	return &item, nil
}

func (r *catalogRepo) ContentsByAgeGroup(ctx context.Context, ageGroupID string, contentType ContentType) ([]ContentItem, error) {
	q := r.db.WithContext(ctx).Where("age_group_id = ?", ageGroupID)
	if contentType != "" {
		q = q.Where("content_type = ?", contentType)
	}

	var items []ContentItem
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return items, nil
}
