package mood

import (
	"context"
	"strings"
)

// Energy banding thresholds over sentiment confidence. Values between the
// two bands delegate to EstimateEnergy on the raw text.
const (
	highEnergyConfidence = 0.75
	lowEnergyConfidence  = 0.40
)

// Fallback confidence is clamped to this range so zero-signal text is never
// reported as either certain or useless.
const (
	fallbackConfidenceMin = 0.6
	fallbackConfidenceMax = 0.95
)

// fallbackHighEnergySignals is the number of matched sentiment words above
// which the lexical fallback reports high energy.
const fallbackHighEnergySignals = 2

// sentimentLabels normalizes the opaque label codes emitted by the
// three-class polarity model to canonical sentiment names.
var sentimentLabels = map[string]string{
	"LABEL_0": SentimentNegative,
	"LABEL_1": SentimentNeutral,
	"LABEL_2": SentimentPositive,
}

// Curated word lists for the lexical sentiment fallback.
var (
	positiveWords = []string{
		"happy", "joy", "love", "excited", "great", "amazing",
		"wonderful", "good", "peaceful", "grateful",
	}
	negativeWords = []string{
		"sad", "angry", "frustrated", "tired", "worried",
		"stressed", "bad", "awful", "terrible", "anxious",
	}
)

// SentimentResult is the full sentiment adapter contract: polarity,
// confidence, the derived energy level and the combined lookup label.
type SentimentResult struct {
	Sentiment     string
	Confidence    float64
	Energy        string
	CombinedLabel string
	Scores        map[string]float64
}

// analyzeSentiment classifies text polarity via the scorer, deriving energy
// from the confidence bands. Any scorer failure, including a nil scorer or
// an empty result set, degrades to the lexical fallback; this function never
// returns an error.
func (a *Analyzer) analyzeSentiment(ctx context.Context, text string) SentimentResult {
	if a.sentiment == nil {
		return fallbackSentiment(text)
	}

	results, err := a.sentiment.ScoreSentiment(ctx, text)
	if err != nil || len(results) == 0 {
		a.warnDegraded("sentiment", err)
		return fallbackSentiment(text)
	}

	scores := make(map[string]float64, len(results))
	dominant := ""
	best := -1.0
	for _, r := range results {
		label := r.Label
		if canonical, ok := sentimentLabels[label]; ok {
			label = canonical
		}
		scores[label] = r.Score
		// First-encountered max wins on ties.
		if r.Score > best {
			best = r.Score
			dominant = label
		}
	}

	energy := ""
	switch {
	case best >= highEnergyConfidence:
		energy = EnergyHigh
	case best <= lowEnergyConfidence:
		energy = EnergyLow
	default:
		energy = EstimateEnergy(text)
	}

	return SentimentResult{
		Sentiment:     dominant,
		Confidence:    best,
		Energy:        energy,
		CombinedLabel: dominant + "-" + energy,
		Scores:        scores,
	}
}

// fallbackSentiment classifies text by counting matches against fixed
// positive and negative word lists. Confidence is clamped to
// [fallbackConfidenceMin, fallbackConfidenceMax] regardless of input.
func fallbackSentiment(text string) SentimentResult {
	words := strings.Fields(strings.ToLower(text))

	var positive, negative int
	for _, w := range words {
		if containsWord(positiveWords, w) {
			positive++
		}
		if containsWord(negativeWords, w) {
			negative++
		}
	}

	diff := positive - negative
	if diff < 0 {
		diff = -diff
	}
	confidence := (float64(diff) + 1) / (float64(len(words))/10 + 1)
	confidence = clamp(confidence, fallbackConfidenceMin, fallbackConfidenceMax)

	sentiment := SentimentNeutral
	switch {
	case positive > negative:
		sentiment = SentimentPositive
	case negative > positive:
		sentiment = SentimentNegative
	}

	energy := EnergyLow
	if positive+negative > fallbackHighEnergySignals {
		energy = EnergyHigh
	}

	return SentimentResult{
		Sentiment:     sentiment,
		Confidence:    confidence,
		Energy:        energy,
		CombinedLabel: sentiment + "-" + energy,
		Scores:        map[string]float64{sentiment: confidence},
	}
}

func containsWord(list []string, w string) bool {
	for _, candidate := range list {
		if candidate == w {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
