package mood

import (
	"context"
	"strings"
)

// fallbackEmotionScale stretches raw keyword-match ratios so that a single
// matched word in a short entry still registers; scores cap at 1.
const fallbackEmotionScale = 3.0

// allNearZeroThreshold: when every fallback emotion scores below this, a
// synthetic neutral signal is injected so downstream dominant-emotion logic
// always has something to pick.
const allNearZeroThreshold = 0.1

// fallbackEmotionOrder fixes the emission order of the lexical emotion
// fallback, which in turn fixes dominant-emotion tie-breaking.
var fallbackEmotionOrder = []string{"joy", "sadness", "anger", "fear", "surprise", "disgust"}

// emotionKeywords maps each fallback emotion to its cue words.
var emotionKeywords = map[string][]string{
	"joy":      {"happy", "excited", "joy", "love", "amazing", "wonderful"},
	"sadness":  {"sad", "down", "depressed", "lonely", "hurt"},
	"anger":    {"angry", "mad", "frustrated", "annoyed", "irritated"},
	"fear":     {"scared", "worried", "anxious", "nervous", "afraid"},
	"surprise": {"surprised", "shocked", "amazed", "unexpected"},
	"disgust":  {"disgusted", "sick", "revolting", "gross"},
}

// analyzeEmotions scores the text over an open emotion vocabulary, returning
// the scores in classifier emission order. Scorer failures degrade to the
// keyword fallback; never returns an error.
func (a *Analyzer) analyzeEmotions(ctx context.Context, text string) []LabelScore {
	if a.emotion == nil {
		return fallbackEmotions(text)
	}

	results, err := a.emotion.ScoreEmotions(ctx, text)
	if err != nil || len(results) == 0 {
		a.warnDegraded("emotion", err)
		return fallbackEmotions(text)
	}
	return results
}

// fallbackEmotions scores each emotion by keyword match ratio. If every
// emotion is near zero it appends a neutral signal instead of returning an
// all-flat result.
func fallbackEmotions(text string) []LabelScore {
	words := strings.Fields(strings.ToLower(text))
	wordCount := max(len(words), 1)

	emotions := make([]LabelScore, 0, len(fallbackEmotionOrder)+1)
	allNearZero := true
	for _, emotion := range fallbackEmotionOrder {
		var matches int
		for _, w := range words {
			if containsWord(emotionKeywords[emotion], w) {
				matches++
			}
		}
		score := float64(matches) / float64(wordCount) * fallbackEmotionScale
		if score > 1.0 {
			score = 1.0
		}
		if score >= allNearZeroThreshold {
			allNearZero = false
		}
		emotions = append(emotions, LabelScore{Label: emotion, Score: score})
	}

	if allNearZero {
		emotions = append(emotions, LabelScore{Label: "neutral", Score: 0.8})
	}
	return emotions
}
