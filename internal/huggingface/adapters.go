package huggingface

import (
	"context"

	"github.com/moodboard-ai/api/internal/mood"
)

// SentimentAdapter implements mood.SentimentScorer over the three-class
// polarity model.
type SentimentAdapter struct {
	client *Client
}

// NewSentimentAdapter creates a sentiment scorer backed by the client.
func NewSentimentAdapter(client *Client) *SentimentAdapter {
	return &SentimentAdapter{client: client}
}

func (a *SentimentAdapter) ScoreSentiment(ctx context.Context, text string) ([]mood.LabelScore, error) {
	return a.client.ClassifyText(ctx, SentimentModel, text)
}

// EmotionAdapter implements mood.EmotionScorer over the emotion model.
type EmotionAdapter struct {
	client *Client
}

// NewEmotionAdapter creates an emotion scorer backed by the client.
func NewEmotionAdapter(client *Client) *EmotionAdapter {
	return &EmotionAdapter{client: client}
}

func (a *EmotionAdapter) ScoreEmotions(ctx context.Context, text string) ([]mood.LabelScore, error) {
	return a.client.ClassifyText(ctx, EmotionModel, text)
}

// ParserAdapter implements mood.Parser over the POS tagging model.
type ParserAdapter struct {
	client *Client
}

// NewParserAdapter creates a POS tagger backed by the client.
func NewParserAdapter(client *Client) *ParserAdapter {
	return &ParserAdapter{client: client}
}

func (a *ParserAdapter) Tag(ctx context.Context, text string) ([]mood.Token, error) {
	return a.client.TagTokens(ctx, POSModel, text)
}

// Interface conformance checks.
var (
	_ mood.SentimentScorer = (*SentimentAdapter)(nil)
	_ mood.EmotionScorer   = (*EmotionAdapter)(nil)
	_ mood.Parser          = (*ParserAdapter)(nil)
)
