package responder

import "github.com/google/uuid"

// State is the learning state of a conversation.
type State int

const (
	// StateNormal answers questions and greetings.
	StateNormal State = iota
	// StateLearningWord waits for a word and its meaning.
	StateLearningWord
	// StateLearningGreeting waits for a response to an unrecognized greeting.
	StateLearningGreeting
)

func (s State) String() string {
	switch s {
	case StateLearningWord:
		return "learning_word"
	case StateLearningGreeting:
		return "learning_greeting"
	default:
		return "normal"
	}
}

// Session is the per-conversation state passed to every resolution.
type Session struct {
	id    string
	state State
}

// NewSession creates a session in the normal state.
func NewSession() *Session {
	return &Session{
		id:    uuid.NewString(),
		state: StateNormal,
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Learning reports whether either learning state is active.
func (s *Session) Learning() bool {
	return s.state != StateNormal
}

// Cancel returns to the normal state and reports whether learning was active.
func (s *Session) Cancel() bool {
	wasLearning := s.Learning()
	s.state = StateNormal
	return wasLearning
}

func (s *Session) enterWordLearning() {
	s.state = StateLearningWord
}

func (s *Session) enterGreetingLearning() {
	s.state = StateLearningGreeting
}
