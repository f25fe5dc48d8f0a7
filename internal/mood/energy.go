package mood

import (
	"strings"
	"unicode"
)

// capsRatioThreshold marks text as high energy when more than this fraction
// of its characters are uppercase.
const capsRatioThreshold = 0.2

// intenseWords are lexical cues for high energy, matched as case-insensitive
// substrings of the text.
var intenseWords = []string{
	"amazing", "awesome", "fantastic", "furious", "incredible",
	"hate", "love", "ecstatic", "angry", "thrilled", "so", "very",
	"extremely", "super", "totally", "completely",
}

// EstimateEnergy estimates a binary energy level from text surface features:
// repeated exclamation marks, a high uppercase ratio, or the presence of an
// intense word. Pure function of the text.
func EstimateEnergy(text string) string {
	exclamations := strings.Count(text, "!")

	var upper int
	for _, r := range text {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	caps := float64(upper) / float64(max(len([]rune(text)), 1))

	lower := strings.ToLower(text)
	intense := false
	for _, w := range intenseWords {
		if strings.Contains(lower, w) {
			intense = true
			break
		}
	}

	if exclamations > 1 || caps > capsRatioThreshold || intense {
		return EnergyHigh
	}
	return EnergyLow
}
