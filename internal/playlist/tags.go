// Package playlist maps mood profiles to music-search tags and fetches
// mood-matched playlists from the Jamendo catalog.
package playlist

import (
	"strconv"
	"strings"

	"github.com/moodboard-ai/api/internal/mood"
)

// MaxTags is the maximum number of search tags derived from a profile.
const MaxTags = 5

// moodTagMap maps a combined "{sentiment}-{energy}" label to its base
// search tags.
var moodTagMap = map[string][]string{
	"positive-high": {"happy", "energetic", "pop", "upbeat", "dance"},
	"positive-low":  {"calm", "peaceful", "acoustic", "soft", "chill"},
	"negative-high": {"rock", "intense", "alternative", "pop", "energetic"},
	"negative-low":  {"sad", "slow", "acoustic", "emotional", "calm"},
	"neutral-high":  {"electronic", "instrumental", "pop", "upbeat"},
	"neutral-low":   {"chill", "ambient", "instrumental", "lounge"},
}

// defaultTags is used when the combined label is outside the table.
var defaultTags = []string{"chill"}

// emotionTagMap maps a dominant emotion to additional tags. Unknown
// emotions contribute nothing.
var emotionTagMap = map[string][]string{
	"joy":      {"happy", "pop", "upbeat"},
	"sadness":  {"sad", "emotional", "slow", "acoustic"},
	"anger":    {"rock", "metal", "intense"},
	"fear":     {"ambient", "electronic", "dark"},
	"surprise": {"pop", "electronic", "upbeat"},
	"disgust":  {"rock", "alternative", "metal"},
}

// colorVibeGenres maps a palette vibe to genre tags.
var colorVibeGenres = map[string][]string{
	"vibrant": {"pop", "dance", "electronic", "edm"},
	"pastel":  {"indie", "folk", "acoustic", "singer-songwriter"},
	"dark":    {"alternative", "rock", "gothic", "darkwave"},
	"warm":    {"jazz", "soul", "r&b", "blues"},
	"cool":    {"ambient", "chillwave", "synthwave", "electronic"},
}

// Palette vibe cutoffs. Bright hex pairs mark saturated colors; the red
// channel threshold separates dark palettes.
const (
	vibrantRatio      = 0.6
	pastelRatio       = 0.3
	darkRatio         = 0.5
	darkRedChannelMax = 100
)

// brightHexPairs are the hex digit pairs that mark a color as vibrant.
var brightHexPairs = []string{"ff", "ee", "dd"}

// MapTags derives an ordered, deduplicated list of up to MaxTags music
// search tags from a profile: base tags for the sentiment/energy pair, tags
// for the dominant emotion, then genre tags for the palette's vibe.
// Pure function, no I/O.
func MapTags(profile *mood.Profile) []string {
	var tags []string

	base, ok := moodTagMap[profile.CombinedLabel()]
	if !ok {
		base = defaultTags
	}
	tags = append(tags, base...)

	if dominant := profile.DominantEmotion(); dominant != "" {
		tags = append(tags, emotionTagMap[dominant]...)
	}

	vibe := classifyPaletteVibe(profile.ColorPalette)
	tags = append(tags, colorVibeGenres[vibe]...)

	// Deduplicate preserving first occurrence, then cap.
	seen := make(map[string]bool, len(tags))
	unique := make([]string, 0, MaxTags)
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
		if len(unique) == MaxTags {
			break
		}
	}
	return unique
}

// classifyPaletteVibe buckets a color palette into vibrant, pastel, dark or
// neutral based on how many colors carry bright hex pairs and how many have
// a dark red channel.
func classifyPaletteVibe(colors []string) string {
	if len(colors) == 0 {
		return "neutral"
	}

	var vibrant int
	for _, c := range colors {
		lower := strings.ToLower(c)
		for _, pair := range brightHexPairs {
			if strings.Contains(lower, pair) {
				vibrant++
				break
			}
		}
	}

	total := float64(len(colors))
	if float64(vibrant) > total*vibrantRatio {
		return "vibrant"
	}
	if float64(vibrant) < total*pastelRatio {
		return "pastel"
	}

	var dark int
	for _, c := range colors {
		if red, ok := redChannel(c); ok && red < darkRedChannelMax {
			dark++
		}
	}
	if float64(dark) > total*darkRatio {
		return "dark"
	}

	return "neutral"
}

// redChannel parses the red channel of a "#RRGGBB" color code.
func redChannel(color string) (int, bool) {
	if !strings.HasPrefix(color, "#") || len(color) < 3 {
		return 0, false
	}
	v, err := strconv.ParseInt(color[1:3], 16, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
