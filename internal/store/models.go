package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentType enumerates the kinds of catalog content.
type ContentType string

const (
	ContentLesson    ContentType = "lesson"
	ContentChallenge ContentType = "challenge"
	ContentTutorial  ContentType = "tutorial"
	ContentQuiz      ContentType = "quiz"
)

// AgeGroup is a named age bucket constraining which content a user may see.
type AgeGroup struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	MinAge      int
	MaxAge      int
	Description string
}

func (g *AgeGroup) BeforeCreate(_ *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// User is the minimal user record the engine reads: identity plus age group.
type User struct {
	ID          string `gorm:"primaryKey"`
	Username    string `gorm:"uniqueIndex"`
	Email       string `gorm:"uniqueIndex"`
	DisplayName string
	AgeGroupID  *string
	AgeGroup    *AgeGroup
	CreatedAt   time.Time
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}
	return nil
}

// ContentItem is a catalog entry. Owned by the content catalog; the engine
// treats it as read-only.
type ContentItem struct {
	ID                 string `gorm:"primaryKey"`
	Title              string
	Description        string
	ContentType        ContentType `gorm:"index"`
	AgeGroupID         string      `gorm:"index"`
	AgeGroup           *AgeGroup
	DifficultyBase     int               `gorm:"default:1"`
	Metadata           map[string]string `gorm:"serializer:json"`
	IsOfflineAvailable bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (c *ContentItem) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ChallengeItem is a coding challenge attached to a ContentItem.
type ChallengeItem struct {
	ID               string `gorm:"primaryKey"`
	ContentID        string `gorm:"index"`
	Title            string
	Description      string
	ProblemStatement string
	ExpectedOutput   string
	Points           int `gorm:"default:10"`
	DifficultyLevel  int `gorm:"default:1"`
	Theme            string
	Hints            []Hint `gorm:"foreignKey:ChallengeID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c *ChallengeItem) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Hint is a pre-authored, ordered hint for a challenge.
type Hint struct {
	ID              string `gorm:"primaryKey"`
	ChallengeID     string `gorm:"index"`
	HintText        string
	SequenceNumber  int
	PointsDeduction int
}

func (h *Hint) BeforeCreate(_ *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// UserProgress tracks a user's progress on a content item or challenge.
// At least one of ContentID/ChallengeID must be set; both may be. One
// record exists per (user, content) or (user, challenge) pair, and
// CompletionPercentage never decreases.
type UserProgress struct {
	ID                   string `gorm:"primaryKey"`
	UserID               string `gorm:"index"`
	ContentID            *string
	Content              *ContentItem
	ChallengeID          *string
	Challenge            *ChallengeItem
	CompletionPercentage float64
	PointsEarned         int
	StartedAt            time.Time
	CompletedAt          *time.Time
	DifficultyLevel      int `gorm:"default:1"`
}

func (p *UserProgress) BeforeSave(_ *gorm.DB) error {
	if p.ContentID == nil && p.ChallengeID == nil {
		return fmt.Errorf("progress record needs a content or challenge reference")
	}
	return nil
}

func (p *UserProgress) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.StartedAt.IsZero() {
		p.StartedAt = time.Now()
	}
	return nil
}
