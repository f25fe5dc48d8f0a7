package mood

import (
	"context"
	"reflect"
	"testing"
)

func TestAnalyzeRejectsShortText(t *testing.T) {
	a := NewAnalyzer()

	for _, text := range []string{"", "ok", "  a  "} {
		if _, err := a.Analyze(context.Background(), text); err != ErrTextTooShort {
			t.Errorf("Analyze(%q) error = %v, want ErrTextTooShort", text, err)
		}
	}
}

func TestAnalyzeWithScorers(t *testing.T) {
	a := NewAnalyzer(
		WithSentimentScorer(&stubSentimentScorer{
			results: []LabelScore{{Label: "LABEL_2", Score: 0.9}},
		}),
		WithEmotionScorer(&stubEmotionScorer{
			results: []LabelScore{{Label: "joy", Score: 0.9}},
		}),
	)

	profile, err := a.Analyze(context.Background(), "I'm feeling really happy and excited!")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if profile.Sentiment != SentimentPositive {
		t.Errorf("sentiment = %q, want %q", profile.Sentiment, SentimentPositive)
	}
	if profile.SentimentConfidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", profile.SentimentConfidence)
	}
	if profile.EnergyLevel != EnergyHigh {
		t.Errorf("energy = %q, want %q", profile.EnergyLevel, EnergyHigh)
	}
	if profile.ArtStyle != "circles" {
		t.Errorf("art style = %q, want %q", profile.ArtStyle, "circles")
	}
	if profile.MusicMood != "uplifting" {
		t.Errorf("music mood = %q, want %q", profile.MusicMood, "uplifting")
	}
	wantPalette := []string{"#FF6B6B", "#FFE66D", "#FF8E53", "#FF6B9D", "#4ECDC4"}
	if !reflect.DeepEqual(profile.ColorPalette, wantPalette) {
		t.Errorf("palette = %v, want %v", profile.ColorPalette, wantPalette)
	}
	if profile.DominantEmotion() != "joy" {
		t.Errorf("dominant emotion = %q, want %q", profile.DominantEmotion(), "joy")
	}
	if profile.AIInsight != insights["positive-high"] {
		t.Errorf("insight = %q", profile.AIInsight)
	}
}

func TestAnalyzeFullyOffline(t *testing.T) {
	a := NewAnalyzer()

	profile, err := a.Analyze(context.Background(), "Feeling sad and lonely tonight")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if profile.Sentiment != SentimentNegative {
		t.Errorf("sentiment = %q, want %q", profile.Sentiment, SentimentNegative)
	}
	if len(profile.ColorPalette) != 5 {
		t.Errorf("palette has %d colors, want 5", len(profile.ColorPalette))
	}
	if profile.DominantEmotion() != "sadness" {
		t.Errorf("dominant emotion = %q, want %q", profile.DominantEmotion(), "sadness")
	}
	if len(profile.Keywords) == 0 {
		t.Error("expected fallback keywords")
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := NewAnalyzer()
	text := "Grateful for a peaceful morning walk"

	first, err := a.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := a.Analyze(context.Background(), text)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

func TestModelsLoaded(t *testing.T) {
	a := NewAnalyzer(WithSentimentScorer(&stubSentimentScorer{}))

	got := a.ModelsLoaded()
	want := map[string]bool{"sentiment": true, "emotion": false, "nlp": false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ModelsLoaded() = %v, want %v", got, want)
	}
}

func TestDominantEmotionTieBreak(t *testing.T) {
	p := &Profile{
		Emotions:     map[string]float64{"surprise": 0.5, "joy": 0.5, "fear": 0.1},
		emotionOrder: []string{"surprise", "joy", "fear"},
	}
	if got := p.DominantEmotion(); got != "surprise" {
		t.Errorf("dominant = %q, want first-emitted %q", got, "surprise")
	}

	// Without a recorded order, ties resolve lexicographically.
	p.emotionOrder = nil
	if got := p.DominantEmotion(); got != "joy" {
		t.Errorf("dominant = %q, want %q", got, "joy")
	}

	empty := &Profile{}
	if got := empty.DominantEmotion(); got != "" {
		t.Errorf("dominant of empty profile = %q, want empty", got)
	}
}
