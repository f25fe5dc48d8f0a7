package mood

import "context"

// LabelScore is a single (label, score) pair emitted by a classifier.
// Slice order is meaningful: it is the classifier's emission order and
// drives tie-breaking downstream.
type LabelScore struct {
	Label string
	Score float64
}

// Token is a single token from a part-of-speech tagger.
type Token struct {
	Text string
	POS  string // Universal POS tag: NOUN, ADJ, DET, ...
}

// SentimentScorer produces a probability distribution over the three-way
// polarity space. Labels may be opaque model codes (e.g. "LABEL_2") and are
// normalized by the sentiment adapter.
type SentimentScorer interface {
	ScoreSentiment(ctx context.Context, text string) ([]LabelScore, error)
}

// EmotionScorer produces independent per-emotion scores over an open
// emotion vocabulary. Scores are not required to sum to 1.
type EmotionScorer interface {
	ScoreEmotions(ctx context.Context, text string) ([]LabelScore, error)
}

// Parser tags each token of the text with its part of speech. The keyword
// extractor derives noun phrases and adjectives from the tag sequence.
type Parser interface {
	Tag(ctx context.Context, text string) ([]Token, error)
}
