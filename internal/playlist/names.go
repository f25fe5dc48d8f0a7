package playlist

import (
	"strings"

	"github.com/moodboard-ai/api/internal/mood"
)

// nameTemplates holds candidate playlist names per combined label. The
// %s slot takes the capitalized dominant emotion. The first template is
// always used so the name is stable for a given profile.
var nameTemplates = map[string][]string{
	"positive-high": {"Energized & %s", "High Vibes Only", "Uplifting Energy"},
	"positive-low":  {"Peaceful %s", "Gentle Positivity", "Serene Moments"},
	"negative-high": {"Intense %s", "Cathartic Release", "Raw Energy"},
	"negative-low":  {"Reflective %s", "Quiet Contemplation", "Emotional Journey"},
	"neutral-high":  {"Focused Flow", "Active Balance", "Steady Motion"},
	"neutral-low":   {"Chill Zone", "Balanced Calm", "Mellow Vibes"},
}

// defaultEmotionWords fill the template slot when the profile has no
// dominant emotion.
var defaultEmotionWords = map[string]string{
	"positive-high": "Joyful",
	"positive-low":  "Calm",
	"negative-high": "Power",
	"negative-low":  "Melancholy",
}

// GenerateName builds a playlist name for the profile: the first template
// for its combined label, with the capitalized dominant emotion
// interpolated. Unknown labels get "{Sentiment} {Energy} Mix".
func GenerateName(profile *mood.Profile) string {
	key := profile.CombinedLabel()

	templates, ok := nameTemplates[key]
	if !ok {
		return capitalize(profile.Sentiment) + " " + capitalize(profile.EnergyLevel) + " Mix"
	}

	name := templates[0]
	if !strings.Contains(name, "%s") {
		return name
	}

	emotion := capitalize(profile.DominantEmotion())
	if emotion == "" {
		emotion = defaultEmotionWords[key]
	}
	return strings.Replace(name, "%s", emotion, 1)
}

// capitalize uppercases the first letter of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
