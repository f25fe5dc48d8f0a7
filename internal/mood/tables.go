package mood

// colorPalettes maps (sentiment, energy) to a fixed five-color palette.
// Unknown sentiment falls back to the neutral row; unknown energy within a
// known row falls back to that row's low column.
var colorPalettes = map[string]map[string][]string{
	SentimentPositive: {
		EnergyHigh: {"#FF6B6B", "#FFE66D", "#FF8E53", "#FF6B9D", "#4ECDC4"},
		EnergyLow:  {"#A8E6CF", "#88D8C0", "#FFEAA7", "#FD79A8", "#FDCB6E"},
	},
	SentimentNegative: {
		EnergyHigh: {"#636E72", "#2D3436", "#E17055", "#A29BFE", "#6C5CE7"},
		EnergyLow:  {"#74B9FF", "#0984E3", "#A29BFE", "#DDA0DD", "#81ECEC"},
	},
	SentimentNeutral: {
		EnergyHigh: {"#FDCB6E", "#E17055", "#00B894", "#00CEC9", "#A29BFE"},
		EnergyLow:  {"#DDDDDD", "#AAAAAA", "#888888", "#666666", "#444444"},
	},
}

// insights maps a combined "{sentiment}-{energy}" label to the insight text
// shown alongside the profile.
var insights = map[string]string{
	"positive-high": "Your energy is radiating positivity! Channel this momentum into creative projects or connecting with others.",
	"positive-low":  "There's a gentle contentment in your words. This peaceful energy is perfect for reflection and self-care.",
	"negative-high": "I sense some intensity in your emotions. Consider channeling this energy through physical activity or creative expression.",
	"negative-low":  "You seem to be processing some heavy feelings. Remember that it's okay to feel this way - try some deep breathing or gentle movement.",
	"neutral-high":  "You're in an active, balanced state. This is great energy for tackling projects or trying something new.",
	"neutral-low":   "Your mood feels steady and calm. This is a perfect time for planning, organizing, or quiet activities.",
}

// defaultInsight is used for combined labels outside the table.
const defaultInsight = "Every emotion is valid and temporary. You're doing great by checking in with yourself."

// Presentation attributes keyed by sentiment alone.
var (
	artStyles = map[string]string{
		SentimentPositive: "circles",
		SentimentNegative: "sharp",
		SentimentNeutral:  "organic",
	}
	musicMoods = map[string]string{
		SentimentPositive: "uplifting",
		SentimentNegative: "soothing",
		SentimentNeutral:  "balanced",
	}
)

const (
	defaultArtStyle  = "organic"
	defaultMusicMood = "balanced"
)

// paletteFor resolves the color palette for a (sentiment, energy) pair,
// applying the documented fallback rows.
func paletteFor(sentiment, energy string) []string {
	row, ok := colorPalettes[sentiment]
	if !ok {
		row = colorPalettes[SentimentNeutral]
	}
	palette, ok := row[energy]
	if !ok {
		palette = row[EnergyLow]
	}
	return palette
}

func artStyleFor(sentiment string) string {
	if style, ok := artStyles[sentiment]; ok {
		return style
	}
	return defaultArtStyle
}

func musicMoodFor(sentiment string) string {
	if m, ok := musicMoods[sentiment]; ok {
		return m
	}
	return defaultMusicMood
}

func insightFor(combinedLabel string) string {
	if insight, ok := insights[combinedLabel]; ok {
		return insight
	}
	return defaultInsight
}
