package playlist

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/moodboard-ai/api/internal/jamendo"
	"github.com/moodboard-ai/api/internal/mood"
)

// fakeCatalog records every search and returns canned results keyed by the
// comma-joined tags of the attempt.
type fakeCatalog struct {
	calls   [][]string
	limits  []int
	results map[string][]jamendo.Track
	err     error
}

func (f *fakeCatalog) SearchByTags(_ context.Context, tags []string, limit int) ([]jamendo.Track, error) {
	f.calls = append(f.calls, tags)
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[strings.Join(tags, ",")], nil
}

func positiveHighProfile() *mood.Profile {
	return &mood.Profile{
		Sentiment:   mood.SentimentPositive,
		EnergyLevel: mood.EnergyHigh,
		Emotions:    map[string]float64{"joy": 0.9},
	}
}

func TestFetchWithoutCatalog(t *testing.T) {
	s := NewService(nil, nil)

	got := s.Fetch(context.Background(), positiveHighProfile(), 10)
	want := Result{
		Error:        "Jamendo API not configured",
		PlaylistName: "Mood Playlist",
		Tracks:       []Track{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("result = %+v, want %+v", got, want)
	}
}

func TestFetchRelaxesTags(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]jamendo.Track{
			"happy": {{ID: "42", Name: "Song", ArtistName: "Artist", Duration: 180, Audio: "https://a", Image: "https://i", LicenseURL: "https://l"}},
		},
	}
	s := NewService(catalog, nil)

	got := s.Fetch(context.Background(), positiveHighProfile(), 5)

	wantCalls := [][]string{
		{"happy", "energetic", "pop"},
		{"happy", "energetic"},
		{"happy"},
	}
	if !reflect.DeepEqual(catalog.calls, wantCalls) {
		t.Errorf("search attempts = %v, want %v", catalog.calls, wantCalls)
	}

	if got.Error != "" {
		t.Fatalf("unexpected error %q", got.Error)
	}
	if got.TotalTracks != 1 || len(got.Tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(got.Tracks))
	}
	track := got.Tracks[0]
	if track.ID != "42" || track.Artist != "Artist" || track.JamendoURL != jamendo.TrackURL("42") {
		t.Errorf("track = %+v", track)
	}
	if got.Sentiment != mood.SentimentPositive || got.Energy != mood.EnergyHigh {
		t.Errorf("mood echo = %q/%q", got.Sentiment, got.Energy)
	}
	if len(got.MoodTags) == 0 {
		t.Error("expected mood tags in successful result")
	}
}

func TestFetchUsesInstrumentalResults(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]jamendo.Track{
			"instrumental": {{ID: "7", Name: "Piano Piece"}},
		},
	}
	s := NewService(catalog, nil)

	got := s.Fetch(context.Background(), positiveHighProfile(), 10)

	if len(catalog.calls) != 4 {
		t.Fatalf("got %d attempts, want 4", len(catalog.calls))
	}
	if got.Error != "" {
		t.Fatalf("instrumental hit should not be an error, got %q", got.Error)
	}
	if len(got.Tracks) != 1 || got.Tracks[0].ID != "7" {
		t.Errorf("tracks = %+v, want the instrumental result", got.Tracks)
	}
}

func TestFetchExhaustsAllAttempts(t *testing.T) {
	catalog := &fakeCatalog{}
	s := NewService(catalog, nil)

	got := s.Fetch(context.Background(), positiveHighProfile(), 10)

	if len(catalog.calls) != 4 {
		t.Fatalf("got %d attempts, want 4", len(catalog.calls))
	}
	last := catalog.calls[len(catalog.calls)-1]
	if !reflect.DeepEqual(last, []string{"instrumental"}) {
		t.Errorf("final attempt = %v, want [instrumental]", last)
	}

	if got.Error != "Failed to fetch tracks" {
		t.Errorf("error = %q", got.Error)
	}
	if got.PlaylistName != "Energized & Joy" {
		t.Errorf("playlist name = %q", got.PlaylistName)
	}
	if got.Tracks == nil || len(got.Tracks) != 0 {
		t.Errorf("tracks = %v, want empty non-nil slice", got.Tracks)
	}
}

func TestFetchSurvivesCatalogErrors(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("jamendo down")}
	s := NewService(catalog, nil)

	got := s.Fetch(context.Background(), positiveHighProfile(), 10)
	if got.Error != "Failed to fetch tracks" {
		t.Errorf("error = %q, want failure shape", got.Error)
	}
	if len(catalog.calls) != 4 {
		t.Errorf("got %d attempts, want all 4 before giving up", len(catalog.calls))
	}
}

func TestFetchAppliesDefaultLimit(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]jamendo.Track{
			"happy,energetic,pop": {{ID: "1"}},
		},
	}
	s := NewService(catalog, nil)

	s.Fetch(context.Background(), positiveHighProfile(), 0)
	if len(catalog.limits) == 0 || catalog.limits[0] != DefaultLimit {
		t.Errorf("limit = %v, want %d", catalog.limits, DefaultLimit)
	}
}
