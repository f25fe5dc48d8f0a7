package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	HashedPassword string
	FullName       *string // nullable
	IsActive       bool
	CreatedAt      time.Time
}

// MoodEntry represents a journal entry with its analysis results. The
// analysis columns are nullable because the original rows predate some of
// the derived fields.
type MoodEntry struct {
	ID                  int64
	UserID              uuid.UUID
	TextContent         string
	Sentiment           string
	SentimentConfidence float64
	EnergyLevel         string
	Emotions            map[string]float64 // stored as JSONB
	Keywords            []string           // stored as JSONB
	ColorPalette        []string           // stored as JSONB
	ArtStyle            string
	MusicMood           string
	AIInsight           string
	CreatedAt           time.Time
	UpdatedAt           *time.Time // nullable
}
