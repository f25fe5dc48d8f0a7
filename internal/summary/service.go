// Package summary generates natural-language weekly mood summaries, with a
// deterministic tiered fallback when no text-generation endpoint is wired.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Entry is the per-day mood data a summary is built from.
type Entry struct {
	CreatedAt   time.Time
	Sentiment   string
	EnergyLevel string
}

// Completer abstracts the chat-completion client for testing.
type Completer interface {
	ChatCompletion(ctx context.Context, system, user string, maxTokens int, temperature, topP float64) (string, error)
}

// Generation parameters for the summary request.
const (
	maxTokens   = 60
	temperature = 0.8
	topP        = 0.9
)

// Accepted summary length bounds; responses outside them are discarded in
// favor of the fallback.
const (
	minSummaryLength = 15
	maxSummaryLength = 400
)

// maxSummaryDays caps how many day lines go into the prompt.
const maxSummaryDays = 7

const systemPrompt = "You are a compassionate emotional wellness assistant. Write warm, encouraging, concise summaries."

// noDataSummary is returned when there are no entries at all.
const noDataSummary = "No mood data available for summary."

// Service generates weekly summaries. A nil completer means no
// text-generation endpoint is configured; the fallback is used directly.
type Service struct {
	completer Completer
	logger    *zap.Logger
}

// NewService creates a summary service. completer may be nil.
func NewService(completer Completer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{completer: completer, logger: logger}
}

// Weekly produces a one-sentence summary of the entries. Any upstream
// failure falls back to the pattern-based summary; never returns an error.
func (s *Service) Weekly(ctx context.Context, entries []Entry) string {
	if len(entries) == 0 {
		return noDataSummary
	}

	if s.completer == nil {
		return fallbackSummary(entries)
	}

	prompt := buildPrompt(entries)
	raw, err := s.completer.ChatCompletion(ctx, systemPrompt, prompt, maxTokens, temperature, topP)
	if err != nil {
		s.logger.Warn("summary generation failed, using fallback", zap.Error(err))
		return fallbackSummary(entries)
	}

	cleaned := cleanSummary(raw)
	if len(cleaned) <= minSummaryLength || len(cleaned) >= maxSummaryLength {
		s.logger.Warn("summary length out of bounds, using fallback", zap.Int("length", len(cleaned)))
		return fallbackSummary(entries)
	}
	return cleaned
}

// buildPrompt assembles the week overview and pattern counts into the user
// message.
func buildPrompt(entries []Entry) string {
	var lines []string
	var positive, negative, neutral, highEnergy int

	for _, e := range entries {
		sentiment := e.Sentiment
		if sentiment == "" {
			sentiment = "neutral"
		}
		energy := e.EnergyLevel
		if energy == "" {
			energy = "calm"
		}

		switch sentiment {
		case "positive":
			positive++
		case "negative":
			negative++
		default:
			neutral++
		}
		if energy == "high" {
			highEnergy++
		}

		lines = append(lines, fmt.Sprintf("%s: %s mood, %s energy", e.CreatedAt.Format("Monday"), sentiment, energy))
	}

	if len(lines) > maxSummaryDays {
		lines = lines[:maxSummaryDays]
	}

	return fmt.Sprintf(`Summarize this person's emotional week in EXACTLY ONE sentence (max 50 words). Be warm and encouraging.
Week overview: %s
Stats: %d positive days, %d negative days, %d neutral days, %d high energy days.
Write ONE encouraging sentence summarizing their week:`,
		strings.Join(lines, "\n"), positive, negative, neutral, highEnergy)
}

// cleanSummary rewrites third-person phrasing to second person, strips
// stray quoting and guarantees terminal punctuation.
func cleanSummary(raw string) string {
	replacer := strings.NewReplacer(
		"This person", "You",
		"this person", "you",
		"Their", "Your",
		"their", "your",
	)
	s := replacer.Replace(strings.TrimSpace(raw))
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)

	if s != "" && !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}
