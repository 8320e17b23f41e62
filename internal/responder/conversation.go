package responder

import (
	"fmt"
	"strings"
)

const (
	lookUpPhrase = "look up"
	offlineReply = "I don't have internet access right now. Please provide the meaning or ask something else."
)

// Conversation routes each line of a chat: teach commands, the offline look-up notice,
// the resolver and finally the user-style fallback.
type Conversation struct {
	resolver       *Resolver
	contextHistory *History
	patternLog     *History
	random         Random
}

// NewConversation creates a Conversation with bounded logs of the given sizes.
func NewConversation(resolver *Resolver, contextHistorySize, patternLogSize int, random Random) *Conversation {
	return &Conversation{
		resolver:       resolver,
		contextHistory: NewHistory(contextHistorySize),
		patternLog:     NewHistory(patternLogSize),
		random:         random,
	}
}

// ContextHistory returns the recent raw lines kept as context.
func (c *Conversation) ContextHistory() []string {
	return c.contextHistory.Items()
}

// PatternLog returns the raw lines the fallback replays from.
func (c *Conversation) PatternLog() []string {
	return c.patternLog.Items()
}

// Handle returns the reply to one line. Errors come only from saving knowledge.
func (c *Conversation) Handle(session *Session, input string) (string, error) {
	if session.Learning() && IsLearnCommand(input) {
		reply, err := c.resolver.Learn(session, input)
		if err != nil {
			return "", fmt.Errorf("resolver.Learn > %w", err)
		}
		return reply, nil
	}

	if IsLearnGreetingCommand(input) {
		reply, err := c.resolver.LearnGreeting(input)
		if err != nil {
			return "", fmt.Errorf("resolver.LearnGreeting > %w", err)
		}
		return reply, nil
	}

	c.contextHistory.Add(input)
	c.patternLog.Add(input)

	switch {
	case IsLearnCommand(input):
		reply, err := c.resolver.Learn(session, input)
		if err != nil {
			return "", fmt.Errorf("resolver.Learn > %w", err)
		}
		return reply, nil
	case strings.Contains(strings.ToLower(input), lookUpPhrase):
		return offlineReply, nil
	}

	if reply := c.resolver.Resolve(session, input); reply != "" {
		return reply, nil
	}
	return UserStyleFallback(c.patternLog, c.random), nil
}
