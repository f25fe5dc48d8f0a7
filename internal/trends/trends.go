// Package trends groups a user's mood entries into "mood eras" using
// k-means clustering over their analysis features.
package trends

import (
	"fmt"
	"slices"
	"time"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Config holds clustering parameters.
type Config struct {
	NumClusters    int // Number of clusters to create (default: 3)
	MinClusterSize int // Minimum entries per era (smaller clusters become outliers)
}

// DefaultConfig returns the recommended default configuration.
func DefaultConfig() Config {
	return Config{
		NumClusters:    3,
		MinClusterSize: 2,
	}
}

// Entry is the minimal mood entry data needed for clustering.
type Entry struct {
	ID          int64
	CreatedAt   time.Time
	Sentiment   string
	Confidence  float64
	EnergyLevel string
	Emotions    map[string]float64
}

// Era represents a cluster of entries with a similar mood.
type Era struct {
	Name       string             `json:"name"`
	EntryIDs   []int64            `json:"entry_ids"`
	EntryCount int                `json:"entry_count"`
	Centroid   map[string]float64 `json:"centroid"`
	StartDate  time.Time          `json:"start_date"`
	EndDate    time.Time          `json:"end_date"`
}

// entryObservation wraps an Entry to implement clusters.Observation.
type entryObservation struct {
	entry  *Entry
	coords clusters.Coordinates
}

func (o entryObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o entryObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// featureNames defines the analysis features used for clustering.
var featureNames = []string{"valence", "confidence", "energy", "joy", "sadness"}

// DetectEras groups entries by mood similarity using k-means clustering.
// Returns mood eras sorted most recent first, plus outlier entries that
// don't fit any era. Entries without an analyzed sentiment are outliers.
func DetectEras(entries []Entry, cfg Config) ([]Era, []Entry) {
	if len(entries) == 0 {
		return nil, nil
	}

	if cfg.NumClusters <= 0 {
		cfg.NumClusters = DefaultConfig().NumClusters
	}

	// Separate analyzed entries from unanalyzed ones
	var analyzed []*Entry
	var outliers []Entry

	for i := range entries {
		e := &entries[i]
		if e.Sentiment != "" && e.EnergyLevel != "" {
			analyzed = append(analyzed, e)
		} else {
			outliers = append(outliers, *e)
		}
	}

	// If fewer analyzed entries than clusters, everything is an outlier
	if len(analyzed) < cfg.NumClusters {
		for _, e := range analyzed {
			outliers = append(outliers, *e)
		}
		return nil, outliers
	}

	// Build observations for k-means
	var obs clusters.Observations
	for _, e := range analyzed {
		obs = append(obs, entryObservation{
			entry:  e,
			coords: extractFeatures(e),
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumClusters)
	if err != nil {
		// On error, treat all as outliers
		for _, e := range analyzed {
			outliers = append(outliers, *e)
		}
		return nil, outliers
	}

	var eras []Era
	for _, cluster := range result {
		var clusterEntries []Entry
		for _, o := range cluster.Observations {
			if eo, ok := o.(entryObservation); ok {
				clusterEntries = append(clusterEntries, *eo.entry)
			}
		}

		if len(clusterEntries) < cfg.MinClusterSize {
			outliers = append(outliers, clusterEntries...)
			continue
		}

		slices.SortFunc(clusterEntries, func(a, b Entry) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})

		centroid := make(map[string]float64, len(featureNames))
		for i, name := range featureNames {
			centroid[name] = cluster.Center[i]
		}

		ids := make([]int64, len(clusterEntries))
		for i, e := range clusterEntries {
			ids[i] = e.ID
		}

		startDate := clusterEntries[0].CreatedAt
		endDate := clusterEntries[len(clusterEntries)-1].CreatedAt

		eras = append(eras, Era{
			Name:       formatEraName(generateEraName(centroid), startDate, endDate),
			EntryIDs:   ids,
			EntryCount: len(clusterEntries),
			Centroid:   centroid,
			StartDate:  startDate,
			EndDate:    endDate,
		})
	}

	// Sort eras by start date (most recent first)
	slices.SortFunc(eras, func(a, b Era) int {
		return b.StartDate.Compare(a.StartDate)
	})

	return eras, outliers
}

// extractFeatures maps an entry onto the clustering feature space. Valence
// folds the three-way sentiment onto [0,1]; energy is binary.
func extractFeatures(e *Entry) clusters.Coordinates {
	valence := 0.5
	switch e.Sentiment {
	case "positive":
		valence = 1.0
	case "negative":
		valence = 0.0
	}

	energy := 0.0
	if e.EnergyLevel == "high" {
		energy = 1.0
	}

	return clusters.Coordinates{
		valence,
		e.Confidence,
		energy,
		e.Emotions["joy"],
		e.Emotions["sadness"],
	}
}

// formatEraName combines an era name with its date range.
func formatEraName(name string, start, end time.Time) string {
	const dateFormat = "Jan 2, 2006"
	startStr := start.Format(dateFormat)
	endStr := end.Format(dateFormat)

	if startStr == endStr {
		return fmt.Sprintf("%s: %s", name, startStr)
	}
	return fmt.Sprintf("%s: %s - %s", name, startStr, endStr)
}
