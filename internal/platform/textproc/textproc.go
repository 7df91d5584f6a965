// Package textproc provides the lowercase/tokenize/stem pipeline used for
// itinerary search matching. It is a matching aid, not a search engine.
package textproc

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// Analyze splits text into lowercase Porter-stemmed tokens. Tokens that fail
// stemming are kept in their lowercase form.
func Analyze(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.ToLower(f)
		if stemmed, err := snowball.Stem(tok, "english", false); err == nil && stemmed != "" {
			tok = stemmed
		}
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Process normalizes text for substring matching: analyzed tokens joined by
// single spaces. Empty or whitespace-only input yields "".
func Process(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	tokens := Analyze(text)
	if len(tokens) == 0 {
		return strings.ToLower(text)
	}
	return strings.Join(tokens, " ")
}
