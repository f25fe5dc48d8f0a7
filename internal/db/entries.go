package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MoodEntryRepository handles mood entry database operations.
type MoodEntryRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a new mood entry and fills in its generated ID.
func (r *MoodEntryRepository) Create(ctx context.Context, entry *MoodEntry) error {
	query := `
		INSERT INTO mood_entries (
			user_id, text_content, sentiment, sentiment_confidence, energy_level,
			emotions, keywords, color_palette, art_style, music_mood, ai_insight, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	now := time.Now()
	err := r.pool.QueryRow(ctx, query,
		entry.UserID,
		entry.TextContent,
		entry.Sentiment,
		entry.SentimentConfidence,
		entry.EnergyLevel,
		entry.Emotions,
		entry.Keywords,
		entry.ColorPalette,
		entry.ArtStyle,
		entry.MusicMood,
		entry.AIInsight,
		now,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("inserting mood entry: %w", err)
	}
	entry.CreatedAt = now
	return nil
}

// ListRecent returns the user's most recent entries, newest first.
func (r *MoodEntryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]MoodEntry, error) {
	query := selectEntries + `
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, userID, limit)
}

// ListSince returns the user's entries created at or after the given time,
// oldest first. Used by the weekly summary and mood trends.
func (r *MoodEntryRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]MoodEntry, error) {
	query := selectEntries + `
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`
	return r.list(ctx, query, userID, since)
}

const selectEntries = `
	SELECT id, user_id, text_content,
		COALESCE(sentiment, ''), COALESCE(sentiment_confidence, 0), COALESCE(energy_level, ''),
		emotions, keywords, color_palette,
		COALESCE(art_style, ''), COALESCE(music_mood, ''), COALESCE(ai_insight, ''),
		created_at, updated_at
	FROM mood_entries
`

func (r *MoodEntryRepository) list(ctx context.Context, query string, args ...any) ([]MoodEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying mood entries: %w", err)
	}
	defer rows.Close()

	var entries []MoodEntry
	for rows.Next() {
		var e MoodEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.TextContent,
			&e.Sentiment,
			&e.SentimentConfidence,
			&e.EnergyLevel,
			&e.Emotions,
			&e.Keywords,
			&e.ColorPalette,
			&e.ArtStyle,
			&e.MusicMood,
			&e.AIInsight,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning mood entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood entries: %w", err)
	}
	return entries, nil
}
