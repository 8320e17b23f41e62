// Package responder turns one line of user input into exactly one reply.
package responder

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/eliana/internal/matcher"
	"github.com/at-ishikawa/eliana/internal/text"
)

const (
	learningModePrompt    = "I am in learning mode. Please provide the word and its meaning or type 'nevermind' to cancel."
	unknownSubjectFormat  = "I don't know the meaning of %s. Could you please tell me its meaning?"
	unknownGreetingPrompt = "I don't recognize this greeting. Please provide a response for it or type 'nevermind' to cancel."
	unknownWordsFormat    = "I don't know the meaning of %s. Could you please tell me their meanings?"
	noInformationReply    = "How am I supposed to know. I don't have any information on that."
)

// Rule names the resolution step that produced a reply.
type Rule string

const (
	RuleLearningMode    Rule = "learning_mode"
	RuleKnownSubject    Rule = "known_subject"
	RuleUnknownSubject  Rule = "unknown_subject"
	RuleGreeting        Rule = "greeting"
	RuleUnknownGreeting Rule = "unknown_greeting"
	RuleUnknownWords    Rule = "unknown_words"
	RuleMeanings        Rule = "meanings"
	RuleNoInformation   Rule = "no_information"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/responder/mock_knowledge_store.go -package=mock_responder KnowledgeStore

// KnowledgeStore is what the resolver and the teach commands need from the knowledge store.
type KnowledgeStore interface {
	Lookup(word string) (string, bool)
	IsGreeting(trigger string) bool
	NextGreetingResponse(trigger string) (string, bool)
	Define(word, meaning string) error
	AddGreetingResponse(trigger, response string) error
}

// Resolver applies the reply rules in order; the first rule that matches wins.
type Resolver struct {
	store KnowledgeStore
}

// NewResolver creates a Resolver reading from store.
func NewResolver(store KnowledgeStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the reply to input. It may move session into learning mode
// and advances greeting cursors.
func (r *Resolver) Resolve(session *Session, input string) string {
	reply, rule := r.resolve(session, input)
	slog.Default().Debug("resolved input",
		slog.String("session", session.ID()),
		slog.String("rule", string(rule)),
		slog.String("state", session.State().String()),
	)
	return reply
}

func (r *Resolver) resolve(session *Session, input string) (string, Rule) {
	if session.Learning() {
		return learningModePrompt, RuleLearningMode
	}

	normalized := text.Normalize(input)
	if match, ok := matcher.ExtractSubject(normalized); ok {
		meaning, found := r.store.Lookup(match.Subject)
		if !found {
			return fmt.Sprintf(unknownSubjectFormat, match.Subject), RuleUnknownSubject
		}
		return match.Template.Answer(match.Subject, meaning), RuleKnownSubject
	}

	if matcher.IsKnownGreeting(r.store, normalized) {
		if response, ok := r.store.NextGreetingResponse(normalized); ok {
			return response, RuleGreeting
		}
	}

	tokens := text.Tokenize(normalized)
	if matcher.HasGreetingWord(tokens) {
		session.enterGreetingLearning()
		return unknownGreetingPrompt, RuleUnknownGreeting
	}

	if unknown := matcher.UnknownWords(r.store, tokens); len(unknown) > 0 {
		return fmt.Sprintf(unknownWordsFormat, strings.Join(unknown, ", ")), RuleUnknownWords
	}

	contentTokens := text.ContentTokens(tokens)
	if len(contentTokens) == 0 {
		return noInformationReply, RuleNoInformation
	}
	parts := make([]string, 0, len(contentTokens))
	for _, token := range contentTokens {
		if meaning, ok := r.store.Lookup(token); ok {
			parts = append(parts, meaning)
			continue
		}
		parts = append(parts, token)
	}
	return strings.Join(parts, " "), RuleMeanings
}
