package mood

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// MinTextLength is the minimum number of non-whitespace-trimmed characters
// accepted for analysis.
const MinTextLength = 3

// ErrTextTooShort is returned when the trimmed text is below MinTextLength.
var ErrTextTooShort = errors.New("text must be at least 3 characters long")

// Analyzer derives mood profiles from journal text. Classifier ports are
// optional: any that is nil, errors, or times out is replaced by its
// deterministic lexical fallback, so Analyze never fails for valid input.
type Analyzer struct {
	sentiment SentimentScorer
	emotion   EmotionScorer
	parser    Parser
	logger    *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSentimentScorer wires the external sentiment classifier.
func WithSentimentScorer(s SentimentScorer) Option {
	return func(a *Analyzer) { a.sentiment = s }
}

// WithEmotionScorer wires the external emotion classifier.
func WithEmotionScorer(s EmotionScorer) Option {
	return func(a *Analyzer) { a.emotion = s }
}

// WithParser wires the external part-of-speech tagger.
func WithParser(p Parser) Option {
	return func(a *Analyzer) { a.parser = p }
}

// WithLogger sets the logger used to report degraded-mode activations.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// NewAnalyzer creates an Analyzer. With no options it runs entirely on the
// lexical fallbacks.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ModelsLoaded reports which classifier ports are wired, for health checks.
func (a *Analyzer) ModelsLoaded() map[string]bool {
	return map[string]bool{
		"sentiment": a.sentiment != nil,
		"emotion":   a.emotion != nil,
		"nlp":       a.parser != nil,
	}
}

// Analyze runs the full mood analysis on the trimmed text and assembles the
// profile. The three sub-analyses are independent and run concurrently.
// The only possible error is ErrTextTooShort.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Profile, error) {
	text = strings.TrimSpace(text)
	if len(text) < MinTextLength {
		return nil, ErrTextTooShort
	}

	var (
		wg        sync.WaitGroup
		sentiment SentimentResult
		emotions  []LabelScore
		keywords  []string
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		sentiment = a.analyzeSentiment(ctx, text)
	}()
	go func() {
		defer wg.Done()
		emotions = a.analyzeEmotions(ctx, text)
	}()
	go func() {
		defer wg.Done()
		keywords = a.extractKeywords(ctx, text)
	}()
	wg.Wait()

	emotionMap := make(map[string]float64, len(emotions))
	emotionOrder := make([]string, 0, len(emotions))
	for _, e := range emotions {
		if _, seen := emotionMap[e.Label]; !seen {
			emotionOrder = append(emotionOrder, e.Label)
		}
		emotionMap[e.Label] = e.Score
	}

	profile := &Profile{
		Sentiment:           sentiment.Sentiment,
		SentimentConfidence: sentiment.Confidence,
		EnergyLevel:         sentiment.Energy,
		Emotions:            emotionMap,
		Keywords:            keywords,
		ColorPalette:        paletteFor(sentiment.Sentiment, sentiment.Energy),
		ArtStyle:            artStyleFor(sentiment.Sentiment),
		MusicMood:           musicMoodFor(sentiment.Sentiment),
		AIInsight:           insightFor(sentiment.CombinedLabel),
		emotionOrder:        emotionOrder,
	}

	a.logger.Debug("analysis complete",
		zap.String("sentiment", profile.Sentiment),
		zap.Float64("confidence", profile.SentimentConfidence),
		zap.String("energy", profile.EnergyLevel),
	)

	return profile, nil
}

// warnDegraded logs a classifier failure that triggered a lexical fallback.
func (a *Analyzer) warnDegraded(component string, err error) {
	a.logger.Warn("classifier unavailable, using fallback",
		zap.String("component", component),
		zap.Error(err),
	)
}
