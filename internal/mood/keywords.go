package mood

import (
	"context"
	"strings"
)

// Limits from the extraction contract: up to 5 noun phrases, then up to 3
// adjectives appended after them. The combined list is deliberately not
// truncated back to 5.
const (
	maxNounPhrases = 5
	maxAdjectives  = 3
)

// fallbackKeywordSet is the fixed emotion-adjacent vocabulary scanned when
// the parser is unavailable or yields nothing.
var fallbackKeywordSet = []string{
	"happy", "sad", "angry", "excited", "worried", "calm", "stressed", "peaceful",
}

// extractKeywords pulls representative noun phrases and adjectives from the
// text via the POS tagger. If the tagger is missing, fails, or produces no
// keywords at all, a fixed-vocabulary scan of the raw text substitutes.
func (a *Analyzer) extractKeywords(ctx context.Context, text string) []string {
	var keywords []string

	if a.parser != nil {
		tokens, err := a.parser.Tag(ctx, text)
		if err != nil {
			a.warnDegraded("keywords", err)
		} else {
			keywords = keywordsFromTokens(tokens)
		}
	}

	if len(keywords) == 0 {
		keywords = fallbackKeywords(text)
	}
	return keywords
}

// keywordsFromTokens derives noun phrases (maximal determiner/adjective/noun
// runs ending in a noun) and standalone adjectives from a POS-tagged token
// sequence. Everything is lowercased.
func keywordsFromTokens(tokens []Token) []string {
	var phrases []string
	var run []string
	endsInNoun := false

	flush := func() {
		if endsInNoun && len(run) > 0 && len(phrases) < maxNounPhrases {
			phrases = append(phrases, strings.ToLower(strings.Join(run, " ")))
		}
		run = run[:0]
		endsInNoun = false
	}

	for _, tok := range tokens {
		switch tok.POS {
		case "NOUN", "PROPN":
			run = append(run, tok.Text)
			endsInNoun = true
		case "DET", "ADJ", "NUM":
			// Trailing modifiers without a noun yet do not close a phrase.
			if endsInNoun {
				flush()
			}
			run = append(run, tok.Text)
		default:
			flush()
		}
	}
	flush()

	var adjectives []string
	for _, tok := range tokens {
		if tok.POS == "ADJ" && len(adjectives) < maxAdjectives {
			adjectives = append(adjectives, strings.ToLower(tok.Text))
		}
	}

	return append(phrases, adjectives...)
}

// fallbackKeywords keeps the first five emotion-adjacent words found in the
// whitespace-tokenized text, in order of appearance.
func fallbackKeywords(text string) []string {
	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if containsWord(fallbackKeywordSet, w) {
			keywords = append(keywords, w)
			if len(keywords) == maxNounPhrases {
				break
			}
		}
	}
	return keywords
}
