// Package text canonicalizes user input for matching.
package text

import "strings"

// stopWords are grammar words that never need a meaning.
var stopWords = map[string]struct{}{
	"what": {}, "is": {}, "a": {}, "the": {}, "of": {}, "and": {}, "to": {}, "in": {},
	"for": {}, "with": {}, "how": {}, "where": {}, "when": {}, "who": {}, "why": {},
}

// Normalize lowercases s, trims surrounding whitespace and strips one trailing
// '?', then one trailing '.', then one trailing '!'.
// "Hi!!" becomes "hi!" and "wait..." becomes "wait..".
func Normalize(s string) string {
	normalized := strings.TrimSpace(strings.ToLower(s))
	normalized = strings.TrimSuffix(normalized, "?")
	normalized = strings.TrimSuffix(normalized, ".")
	normalized = strings.TrimSuffix(normalized, "!")
	return normalized
}

// Tokenize splits normalized text on whitespace.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}

// IsStopWord reports whether token is a grammar word.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// ContentTokens drops stop words and keeps the input order.
func ContentTokens(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if IsStopWord(token) {
			continue
		}
		result = append(result, token)
	}
	return result
}

// ValidMeaning reports whether meaning has any non-space content.
func ValidMeaning(meaning string) bool {
	return strings.TrimSpace(meaning) != ""
}
