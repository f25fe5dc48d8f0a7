package mood

import (
	"context"
	"errors"
	"testing"
)

type stubSentimentScorer struct {
	results []LabelScore
	err     error
}

func (s *stubSentimentScorer) ScoreSentiment(_ context.Context, _ string) ([]LabelScore, error) {
	return s.results, s.err
}

func TestAnalyzeSentimentEnergyBanding(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		text       string
		wantEnergy string
	}{
		{
			name:       "confidence exactly at high band",
			confidence: 0.75,
			text:       "a quiet unremarkable day",
			wantEnergy: EnergyHigh,
		},
		{
			name:       "confidence exactly at low band",
			confidence: 0.40,
			text:       "a quiet unremarkable day",
			wantEnergy: EnergyLow,
		},
		{
			name:       "mid confidence delegates to heuristic, calm text",
			confidence: 0.55,
			text:       "a quiet unremarkable day",
			wantEnergy: EnergyLow,
		},
		{
			name:       "mid confidence delegates to heuristic, excited text",
			confidence: 0.55,
			text:       "what a day!! unbelievable!!",
			wantEnergy: EnergyHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(WithSentimentScorer(&stubSentimentScorer{
				results: []LabelScore{{Label: "LABEL_2", Score: tt.confidence}},
			}))

			got := a.analyzeSentiment(context.Background(), tt.text)
			if got.Energy != tt.wantEnergy {
				t.Errorf("energy = %q, want %q", got.Energy, tt.wantEnergy)
			}
			if got.Sentiment != SentimentPositive {
				t.Errorf("sentiment = %q, want %q", got.Sentiment, SentimentPositive)
			}
			if got.CombinedLabel != SentimentPositive+"-"+tt.wantEnergy {
				t.Errorf("combined label = %q", got.CombinedLabel)
			}
		})
	}
}

func TestAnalyzeSentimentLabelNormalization(t *testing.T) {
	a := NewAnalyzer(WithSentimentScorer(&stubSentimentScorer{
		results: []LabelScore{
			{Label: "LABEL_0", Score: 0.8},
			{Label: "LABEL_1", Score: 0.15},
			{Label: "LABEL_2", Score: 0.05},
		},
	}))

	got := a.analyzeSentiment(context.Background(), "everything went wrong")
	if got.Sentiment != SentimentNegative {
		t.Errorf("sentiment = %q, want %q", got.Sentiment, SentimentNegative)
	}
	if got.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", got.Confidence)
	}
	for _, label := range []string{SentimentNegative, SentimentNeutral, SentimentPositive} {
		if _, ok := got.Scores[label]; !ok {
			t.Errorf("scores missing canonical label %q", label)
		}
	}
}

func TestAnalyzeSentimentTieBreakFirstEncountered(t *testing.T) {
	a := NewAnalyzer(WithSentimentScorer(&stubSentimentScorer{
		results: []LabelScore{
			{Label: "LABEL_1", Score: 0.5},
			{Label: "LABEL_2", Score: 0.5},
		},
	}))

	got := a.analyzeSentiment(context.Background(), "some text")
	if got.Sentiment != SentimentNeutral {
		t.Errorf("tie should keep first-encountered label, got %q", got.Sentiment)
	}
}

func TestAnalyzeSentimentFallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		scorer SentimentScorer
	}{
		{name: "nil scorer", scorer: nil},
		{name: "scorer error", scorer: &stubSentimentScorer{err: errors.New("model down")}},
		{name: "empty result set", scorer: &stubSentimentScorer{results: []LabelScore{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []Option{}
			if tt.scorer != nil {
				opts = append(opts, WithSentimentScorer(tt.scorer))
			}
			a := NewAnalyzer(opts...)

			got := a.analyzeSentiment(context.Background(), "feeling happy and grateful today")
			if got.Sentiment != SentimentPositive {
				t.Errorf("sentiment = %q, want %q", got.Sentiment, SentimentPositive)
			}
			if got.Confidence < fallbackConfidenceMin || got.Confidence > fallbackConfidenceMax {
				t.Errorf("fallback confidence %v outside [%v, %v]",
					got.Confidence, fallbackConfidenceMin, fallbackConfidenceMax)
			}
		})
	}
}

func TestFallbackSentiment(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantSentiment string
		wantEnergy    string
	}{
		{
			name:          "positive words dominate",
			text:          "happy happy joy",
			wantSentiment: SentimentPositive,
			wantEnergy:    EnergyHigh, // three signal words
		},
		{
			name:          "negative words dominate",
			text:          "tired and stressed again",
			wantSentiment: SentimentNegative,
			wantEnergy:    EnergyLow,
		},
		{
			name:          "balanced counts are neutral",
			text:          "happy but also sad",
			wantSentiment: SentimentNeutral,
			wantEnergy:    EnergyLow,
		},
		{
			name:          "no signal words are neutral",
			text:          "the meeting ran long",
			wantSentiment: SentimentNeutral,
			wantEnergy:    EnergyLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackSentiment(tt.text)
			if got.Sentiment != tt.wantSentiment {
				t.Errorf("sentiment = %q, want %q", got.Sentiment, tt.wantSentiment)
			}
			if got.Energy != tt.wantEnergy {
				t.Errorf("energy = %q, want %q", got.Energy, tt.wantEnergy)
			}
			if got.Confidence < fallbackConfidenceMin || got.Confidence > fallbackConfidenceMax {
				t.Errorf("confidence %v outside [%v, %v]",
					got.Confidence, fallbackConfidenceMin, fallbackConfidenceMax)
			}
			if got.Scores[got.Sentiment] != got.Confidence {
				t.Errorf("scores[%q] = %v, want %v", got.Sentiment, got.Scores[got.Sentiment], got.Confidence)
			}
		})
	}
}
