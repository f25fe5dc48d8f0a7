package playlist

import (
	"context"

	"go.uber.org/zap"

	"github.com/moodboard-ai/api/internal/jamendo"
	"github.com/moodboard-ai/api/internal/mood"
)

// DefaultLimit is the number of tracks requested when the caller does not
// specify one.
const DefaultLimit = 10

// instrumentalFallback is the final search attempt when every mood-derived
// tag set comes up empty.
var instrumentalFallback = []string{"instrumental"}

// Catalog abstracts the Jamendo client for testing.
type Catalog interface {
	SearchByTags(ctx context.Context, tags []string, limit int) ([]jamendo.Track, error)
}

// Track is a catalog track shaped for the frontend.
type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	Duration   int    `json:"duration"` // seconds
	AudioURL   string `json:"audio_url"`
	ImageURL   string `json:"image_url"`
	JamendoURL string `json:"jamendo_url"`
	License    string `json:"license"`
}

// Result is the playlist fetch outcome. On failure Error is set and Tracks
// is an empty (non-nil) slice; the other optional fields are omitted.
type Result struct {
	Error        string   `json:"error,omitempty"`
	PlaylistName string   `json:"playlist_name"`
	MoodTags     []string `json:"mood_tags,omitempty"`
	TotalTracks  int      `json:"total_tracks,omitempty"`
	Tracks       []Track  `json:"tracks"`
	Sentiment    string   `json:"sentiment,omitempty"`
	Energy       string   `json:"energy,omitempty"`
}

// Service fetches mood-matched playlists. A nil catalog means no Jamendo
// credential is configured; every fetch then short-circuits to the error
// shape without network I/O.
type Service struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewService creates a playlist service. catalog may be nil when Jamendo is
// not configured.
func NewService(catalog Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, logger: logger}
}

// Fetch returns a playlist matched to the profile's mood. The tag search is
// progressively relaxed - first three tags, first two, first one, then a
// bare instrumental search - stopping at the first attempt with results.
// Never returns an error; failures produce the error-shaped Result.
func (s *Service) Fetch(ctx context.Context, profile *mood.Profile, limit int) Result {
	if s.catalog == nil {
		return Result{
			Error:        "Jamendo API not configured",
			PlaylistName: "Mood Playlist",
			Tracks:       []Track{},
		}
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	tags := MapTags(profile)

	attempts := [][]string{
		headTags(tags, 3),
		headTags(tags, 2),
		headTags(tags, 1),
		instrumentalFallback,
	}

	var found []jamendo.Track
	for _, attempt := range attempts {
		if len(attempt) == 0 {
			continue
		}
		tracks, err := s.catalog.SearchByTags(ctx, attempt, limit)
		if err != nil {
			s.logger.Warn("catalog search failed",
				zap.Strings("tags", attempt),
				zap.Error(err),
			)
			continue
		}
		if len(tracks) > 0 {
			found = tracks
			break
		}
		s.logger.Debug("no tracks found, relaxing tags", zap.Strings("tags", attempt))
	}

	if len(found) == 0 {
		return Result{
			Error:        "Failed to fetch tracks",
			PlaylistName: GenerateName(profile),
			Tracks:       []Track{},
		}
	}

	tracks := make([]Track, len(found))
	for i, t := range found {
		tracks[i] = Track{
			ID:         t.ID,
			Name:       t.Name,
			Artist:     t.ArtistName,
			Album:      t.AlbumName,
			Duration:   t.Duration,
			AudioURL:   t.Audio,
			ImageURL:   t.Image,
			JamendoURL: jamendo.TrackURL(t.ID),
			License:    t.LicenseURL,
		}
	}

	return Result{
		PlaylistName: GenerateName(profile),
		MoodTags:     tags,
		TotalTracks:  len(tracks),
		Tracks:       tracks,
		Sentiment:    profile.Sentiment,
		Energy:       profile.EnergyLevel,
	}
}

// headTags returns at most the first n tags.
func headTags(tags []string, n int) []string {
	if len(tags) < n {
		n = len(tags)
	}
	return tags[:n]
}
