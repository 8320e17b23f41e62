// Package matcher recognizes question templates, greetings and unknown words in normalized input.
package matcher

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/eliana/internal/text"
)

// Dictionary is the read side of the knowledge store the matchers need.
type Dictionary interface {
	Lookup(word string) (string, bool)
	IsGreeting(trigger string) bool
}

// QuestionTemplate binds a question prefix to the answer format for its subject.
type QuestionTemplate struct {
	Prefix string
	Format string
}

// Answer formats subject and meaning with the template.
func (t QuestionTemplate) Answer(subject, meaning string) string {
	return fmt.Sprintf(t.Format, subject, meaning)
}

// QuestionTemplates are checked in order.
var QuestionTemplates = []QuestionTemplate{
	{Prefix: "what is", Format: "%s is %s."},
	{Prefix: "tell me about", Format: "%s is %s."},
}

// greetingWords mark a sentence as an attempted greeting.
var greetingWords = []string{"hello", "hi", "hey"}

// SubjectMatch is a question subject with the template that matched it.
type SubjectMatch struct {
	Subject  string
	Template QuestionTemplate
}

// ExtractSubject returns what follows a question prefix in normalized text.
// The prefix words must equal the leading words of the text, and an empty remainder is no subject.
func ExtractSubject(normalized string) (SubjectMatch, bool) {
	tokens := text.Tokenize(normalized)
	for _, template := range QuestionTemplates {
		prefixTokens := text.Tokenize(template.Prefix)
		if len(tokens) < len(prefixTokens) {
			continue
		}
		if strings.Join(tokens[:len(prefixTokens)], " ") != template.Prefix {
			continue
		}
		subject := strings.Join(tokens[len(prefixTokens):], " ")
		if subject == "" {
			return SubjectMatch{}, false
		}
		return SubjectMatch{Subject: subject, Template: template}, true
	}
	return SubjectMatch{}, false
}

// IsKnownGreeting reports whether normalized text is exactly a greeting trigger.
func IsKnownGreeting(dictionary Dictionary, normalized string) bool {
	return dictionary.IsGreeting(normalized)
}

// HasGreetingWord reports whether any token is hello, hi or hey.
func HasGreetingWord(tokens []string) bool {
	for _, token := range tokens {
		for _, word := range greetingWords {
			if token == word {
				return true
			}
		}
	}
	return false
}

// UnknownWords returns the content tokens without a meaning, in input order.
func UnknownWords(dictionary Dictionary, tokens []string) []string {
	var unknown []string
	for _, token := range text.ContentTokens(tokens) {
		if _, ok := dictionary.Lookup(token); !ok {
			unknown = append(unknown, token)
		}
	}
	return unknown
}
