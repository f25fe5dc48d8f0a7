// Package mood implements the mood profile derivation engine: it turns
// free journal text plus classifier outputs into a deterministic, structured
// mood profile, degrading to lexical fallbacks when no classifier is wired.
package mood

import "sort"

// Canonical sentiment labels.
const (
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentPositive = "positive"
)

// Energy levels.
const (
	EnergyHigh = "high"
	EnergyLow  = "low"
)

// Profile is the immutable result of a full mood analysis. The JSON field
// names are the serialization contract shared with the frontend and the
// mood_entries table; do not rename them.
type Profile struct {
	Sentiment           string             `json:"sentiment"`
	SentimentConfidence float64            `json:"sentiment_confidence"`
	EnergyLevel         string             `json:"energy_level"`
	Emotions            map[string]float64 `json:"emotions"`
	Keywords            []string           `json:"keywords"`
	ColorPalette        []string           `json:"color_palette"`
	ArtStyle            string             `json:"art_style"`
	MusicMood           string             `json:"music_mood"`
	AIInsight           string             `json:"ai_insight"`

	// emotionOrder preserves the order in which the emotion classifier
	// emitted its labels, so that dominant-emotion ties resolve to the
	// first-emitted label. Empty for profiles rebuilt from storage.
	emotionOrder []string
}

// CombinedLabel returns the "{sentiment}-{energy}" key used for insight,
// tag and playlist-name lookups.
func (p *Profile) CombinedLabel() string {
	return p.Sentiment + "-" + p.EnergyLevel
}

// DominantEmotion returns the emotion label with the maximum score.
// Ties resolve to the first label in classifier emission order; profiles
// without a recorded order fall back to lexicographic label order so the
// result stays deterministic. Returns "" when no emotions are present.
func (p *Profile) DominantEmotion() string {
	if len(p.Emotions) == 0 {
		return ""
	}

	order := p.emotionOrder
	if len(order) == 0 {
		order = make([]string, 0, len(p.Emotions))
		for label := range p.Emotions {
			order = append(order, label)
		}
		sort.Strings(order)
	}

	var dominant string
	best := -1.0
	for _, label := range order {
		score, ok := p.Emotions[label]
		if !ok {
			continue
		}
		if score > best {
			best = score
			dominant = label
		}
	}
	return dominant
}
