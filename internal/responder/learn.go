package responder

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/at-ishikawa/eliana/internal/text"
)

const (
	learnPrefix         = "learn:"
	learnGreetingPrefix = "learn greeting:"

	learnUsage          = "No that's wrong. Use 'learn: word meaning'."
	learnGreetingUsage  = "No that's wrong. Use 'learn greeting: greeting response'."
	invalidMeaningReply = "I'm not too sure about that. Please provide a valid meaning."
	learnedWordFormat   = "Thank you so much! I've learned the meaning of '%s' as '%s'."
	learnedGreetingFmt  = "Thank you! I've learned a new greeting: '%s' with response '%s'."
)

// IsLearnCommand reports whether input is a "learn: word meaning" command.
func IsLearnCommand(input string) bool {
	return strings.HasPrefix(strings.ToLower(input), learnPrefix)
}

// IsLearnGreetingCommand reports whether input is a "learn greeting: greeting response" command.
func IsLearnGreetingCommand(input string) bool {
	return strings.HasPrefix(strings.ToLower(input), learnGreetingPrefix)
}

// Learn handles "learn: word meaning". It puts session into word learning mode,
// which stays active after a successful learn until the user cancels it.
func (r *Resolver) Learn(session *Session, input string) (string, error) {
	if !IsLearnCommand(input) {
		return learnUsage, nil
	}
	session.enterWordLearning()

	word, meaning, ok := splitFirstWord(input[len(learnPrefix):])
	if !ok {
		return learnUsage, nil
	}
	return r.TeachWord(word, meaning)
}

// TeachWord stores meaning for word and returns the confirmation reply.
func (r *Resolver) TeachWord(word, meaning string) (string, error) {
	if !text.ValidMeaning(meaning) {
		return invalidMeaningReply, nil
	}
	meaning = strings.TrimSpace(meaning)
	// the store normalizes the key itself
	if err := r.store.Define(word, meaning); err != nil {
		return "", fmt.Errorf("store.Define(%s) > %w", word, err)
	}
	key := text.Normalize(word)
	slog.Default().Info("learned a word",
		slog.String("word", key),
	)
	return fmt.Sprintf(learnedWordFormat, key, meaning), nil
}

// LearnGreeting handles "learn greeting: greeting response" in any state.
// The trigger is the first word after the prefix.
func (r *Resolver) LearnGreeting(input string) (string, error) {
	if !IsLearnGreetingCommand(input) {
		return learnGreetingUsage, nil
	}
	trigger, response, ok := splitFirstWord(input[len(learnGreetingPrefix):])
	if !ok {
		return learnGreetingUsage, nil
	}
	return r.TeachGreeting(trigger, response)
}

// TeachGreeting appends response to trigger, which may contain several words,
// and returns the confirmation reply.
func (r *Resolver) TeachGreeting(trigger, response string) (string, error) {
	response = strings.TrimSpace(response)
	key := text.Normalize(trigger)
	if key == "" || response == "" {
		return learnGreetingUsage, nil
	}
	if err := r.store.AddGreetingResponse(trigger, response); err != nil {
		return "", fmt.Errorf("store.AddGreetingResponse(%s) > %w", key, err)
	}
	slog.Default().Info("learned a greeting",
		slog.String("trigger", key),
	)
	return fmt.Sprintf(learnedGreetingFmt, key, response), nil
}

// splitFirstWord trims s and splits it at the first whitespace into a word and the rest.
func splitFirstWord(s string) (string, string, bool) {
	s = strings.TrimSpace(s)
	index := strings.IndexFunc(s, unicode.IsSpace)
	if index < 0 {
		return "", "", false
	}
	return s[:index], s[index+1:], true
}
