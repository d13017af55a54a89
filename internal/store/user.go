package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// UserRepo reads user records.
type UserRepo interface {
	// ByID fetches a user with their age group preloaded.
	ByID(ctx context.Context, id string) (*User, error)
}

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) ByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Preload("AgeGroup").First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ErrNotFound{Kind: "user", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return &u, nil
}
