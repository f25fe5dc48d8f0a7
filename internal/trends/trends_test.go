package trends

import (
	"testing"
	"time"

	"github.com/muesli/clusters"
)

func day(n int) time.Time {
	return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestDetectErasEmpty(t *testing.T) {
	eras, outliers := DetectEras(nil, DefaultConfig())
	if eras != nil || outliers != nil {
		t.Errorf("got %v, %v, want nil, nil", eras, outliers)
	}
}

func TestDetectErasUnanalyzedAreOutliers(t *testing.T) {
	entries := []Entry{
		{ID: 1, CreatedAt: day(0)},
		{ID: 2, CreatedAt: day(1), Sentiment: "positive"}, // missing energy
	}

	eras, outliers := DetectEras(entries, DefaultConfig())
	if len(eras) != 0 {
		t.Errorf("got %d eras, want 0", len(eras))
	}
	if len(outliers) != 2 {
		t.Errorf("got %d outliers, want 2", len(outliers))
	}
}

func TestDetectErasTooFewEntries(t *testing.T) {
	entries := []Entry{
		{ID: 1, CreatedAt: day(0), Sentiment: "positive", EnergyLevel: "high"},
		{ID: 2, CreatedAt: day(1), Sentiment: "negative", EnergyLevel: "low"},
	}

	eras, outliers := DetectEras(entries, DefaultConfig())
	if len(eras) != 0 {
		t.Errorf("got %d eras, want 0 when entries < clusters", len(eras))
	}
	if len(outliers) != 2 {
		t.Errorf("got %d outliers, want 2", len(outliers))
	}
}

func TestDetectErasClustersDistinctMoods(t *testing.T) {
	var entries []Entry
	id := int64(1)
	add := func(sentiment, energy string, confidence, joy, sadness float64, days int, n int) {
		for i := 0; i < n; i++ {
			entries = append(entries, Entry{
				ID:          id,
				CreatedAt:   day(days + i),
				Sentiment:   sentiment,
				Confidence:  confidence,
				EnergyLevel: energy,
				Emotions:    map[string]float64{"joy": joy, "sadness": sadness},
			})
			id++
		}
	}
	add("positive", "high", 0.9, 0.9, 0.0, 0, 4)
	add("negative", "low", 0.9, 0.0, 0.9, 10, 4)
	add("neutral", "low", 0.5, 0.1, 0.1, 20, 4)

	eras, outliers := DetectEras(entries, DefaultConfig())

	var clustered int
	for _, era := range eras {
		clustered += era.EntryCount
		if era.EntryCount != len(era.EntryIDs) {
			t.Errorf("era %q count %d != %d ids", era.Name, era.EntryCount, len(era.EntryIDs))
		}
		if era.Name == "" {
			t.Error("era has empty name")
		}
		if era.EndDate.Before(era.StartDate) {
			t.Errorf("era %q ends before it starts", era.Name)
		}
		for _, feature := range featureNames {
			if _, ok := era.Centroid[feature]; !ok {
				t.Errorf("era %q centroid missing %q", era.Name, feature)
			}
		}
	}
	if clustered+len(outliers) != len(entries) {
		t.Errorf("%d clustered + %d outliers != %d entries", clustered, len(outliers), len(entries))
	}

	for i := 1; i < len(eras); i++ {
		if eras[i].StartDate.After(eras[i-1].StartDate) {
			t.Error("eras not sorted most recent first")
		}
	}
}

func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  clusters.Coordinates
	}{
		{
			name: "positive high energy",
			entry: Entry{
				Sentiment: "positive", Confidence: 0.9, EnergyLevel: "high",
				Emotions: map[string]float64{"joy": 0.8, "sadness": 0.1},
			},
			want: clusters.Coordinates{1.0, 0.9, 1.0, 0.8, 0.1},
		},
		{
			name: "negative low energy",
			entry: Entry{
				Sentiment: "negative", Confidence: 0.7, EnergyLevel: "low",
				Emotions: map[string]float64{"sadness": 0.9},
			},
			want: clusters.Coordinates{0.0, 0.7, 0.0, 0.0, 0.9},
		},
		{
			name:  "neutral folds to the middle",
			entry: Entry{Sentiment: "neutral", Confidence: 0.5, EnergyLevel: "low"},
			want:  clusters.Coordinates{0.5, 0.5, 0.0, 0.0, 0.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractFeatures(&tt.entry)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d coordinates, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("coordinate %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateEraName(t *testing.T) {
	tests := []struct {
		name     string
		centroid map[string]float64
		want     string
	}{
		{
			name:     "high energy high valence",
			centroid: map[string]float64{"valence": 0.9, "energy": 0.8},
			want:     "Radiant & Energized",
		},
		{
			name:     "high energy low valence",
			centroid: map[string]float64{"valence": 0.2, "energy": 0.8},
			want:     "Stormy & Charged",
		},
		{
			name:     "low energy high valence",
			centroid: map[string]float64{"valence": 0.9, "energy": 0.2},
			want:     "Calm & Content",
		},
		{
			name:     "low energy low valence",
			centroid: map[string]float64{"valence": 0.3, "energy": 0.3},
			want:     "Quiet & Reflective",
		},
		{
			name:     "sadness modifier",
			centroid: map[string]float64{"valence": 0.2, "energy": 0.2, "sadness": 0.7},
			want:     "Quiet & Reflective (Heavy Heart)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateEraName(tt.centroid); got != tt.want {
				t.Errorf("name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEraName(t *testing.T) {
	start := day(0)
	if got := formatEraName("Calm & Content", start, start); got != "Calm & Content: May 1, 2025" {
		t.Errorf("single-day name = %q", got)
	}
	if got := formatEraName("Calm & Content", start, day(6)); got != "Calm & Content: May 1, 2025 - May 7, 2025" {
		t.Errorf("range name = %q", got)
	}
}
