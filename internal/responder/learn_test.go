package responder

import (
	"errors"
	"testing"

	"github.com/at-ishikawa/eliana/internal/knowledge"
	mock_responder "github.com/at-ishikawa/eliana/internal/mocks/responder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_Learn(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantWord    string
		wantMeaning string
	}{
		{
			name:        "word and meaning",
			input:       "learn: cat a small feline",
			want:        "Thank you so much! I've learned the meaning of 'cat' as 'a small feline'.",
			wantWord:    "cat",
			wantMeaning: "a small feline",
		},
		{
			name:        "prefix is case insensitive and the word is normalized",
			input:       "LEARN:   Dog!   a loyal animal  ",
			want:        "Thank you so much! I've learned the meaning of 'dog' as 'a loyal animal'.",
			wantWord:    "dog",
			wantMeaning: "a loyal animal",
		},
		{
			name:  "missing meaning",
			input: "learn: cat",
			want:  "No that's wrong. Use 'learn: word meaning'.",
		},
		{
			name:  "nothing after the prefix",
			input: "learn:",
			want:  "No that's wrong. Use 'learn: word meaning'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, &knowledge.Snapshot{})
			resolver := NewResolver(store)
			session := NewSession()

			got, err := resolver.Learn(session, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, StateLearningWord, session.State())

			if tt.wantWord == "" {
				assert.Empty(t, store.Words())
				return
			}
			meaning, ok := store.Lookup(tt.wantWord)
			assert.True(t, ok)
			assert.Equal(t, tt.wantMeaning, meaning)
		})
	}
}

func TestResolver_Learn_KeepsLearningMode(t *testing.T) {
	resolver := NewResolver(newTestStore(t, nil))
	session := NewSession()
	session.enterWordLearning()

	got, err := resolver.Learn(session, "learn: cat a small feline")
	require.NoError(t, err)
	assert.Contains(t, got, "cat")
	assert.Contains(t, got, "a small feline")
	assert.Equal(t, StateLearningWord, session.State())
	assert.Equal(t, learningModePrompt, resolver.Resolve(session, "what is cat"))
}

func TestResolver_TeachWord_InvalidMeaning(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_responder.NewMockKnowledgeStore(ctrl)
	resolver := NewResolver(store)

	got, err := resolver.TeachWord("cat", " \t ")
	require.NoError(t, err)
	assert.Equal(t, "I'm not too sure about that. Please provide a valid meaning.", got)
}

func TestResolver_Learn_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_responder.NewMockKnowledgeStore(ctrl)
	store.EXPECT().Define("cat", "a small feline").Return(errors.New("disk full"))

	got, err := NewResolver(store).Learn(NewSession(), "learn: cat a small feline")
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestResolver_LearnGreeting(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		want          string
		wantTrigger   string
		wantResponses []string
	}{
		{
			name:          "single word trigger",
			input:         "learn greeting: yo Yo! What's up?",
			want:          "Thank you! I've learned a new greeting: 'yo' with response 'Yo! What's up?'.",
			wantTrigger:   "yo",
			wantResponses: []string{"Yo! What's up?"},
		},
		{
			name:          "trigger is normalized",
			input:         "Learn Greeting: Howdy! Howdy partner",
			want:          "Thank you! I've learned a new greeting: 'howdy' with response 'Howdy partner'.",
			wantTrigger:   "howdy",
			wantResponses: []string{"Howdy partner"},
		},
		{
			name:          "response keeps a pipe character",
			input:         "learn greeting: hey Hi | there",
			want:          "Thank you! I've learned a new greeting: 'hey' with response 'Hi | there'.",
			wantTrigger:   "hey",
			wantResponses: []string{"Hi | there"},
		},
		{
			name:          "only the first word is the trigger",
			input:         "learn greeting: hi Hi there | friend",
			want:          "Thank you! I've learned a new greeting: 'hi' with response 'Hi there | friend'.",
			wantTrigger:   "hi",
			wantResponses: []string{"Hello!", "Hi there | friend"},
		},
		{
			name:          "appends to an existing greeting",
			input:         "learn greeting: hi Sup?",
			want:          "Thank you! I've learned a new greeting: 'hi' with response 'Sup?'.",
			wantTrigger:   "hi",
			wantResponses: []string{"Hello!", "Sup?"},
		},
		{
			name:  "missing response",
			input: "learn greeting: yo",
			want:  "No that's wrong. Use 'learn greeting: greeting response'.",
		},
		{
			name:  "trigger normalizes to nothing",
			input: "learn greeting: ? hello",
			want:  "No that's wrong. Use 'learn greeting: greeting response'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, &knowledge.Snapshot{
				PredefinedResponses: map[string][]string{"hi": {"Hello!"}},
			})
			resolver := NewResolver(store)

			got, err := resolver.LearnGreeting(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.wantTrigger == "" {
				assert.Len(t, store.Greetings(), 1)
				return
			}
			greeting, ok := store.Greeting(tt.wantTrigger)
			require.True(t, ok)
			assert.Equal(t, tt.wantResponses, greeting.Responses)
		})
	}
}

func TestResolver_LearnGreeting_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_responder.NewMockKnowledgeStore(ctrl)
	store.EXPECT().AddGreetingResponse("yo", "Yo!").Return(errors.New("disk full"))

	_, err := NewResolver(store).LearnGreeting("learn greeting: yo Yo!")
	assert.Error(t, err)
}

func TestResolver_TeachGreeting(t *testing.T) {
	tests := []struct {
		name          string
		trigger       string
		response      string
		want          string
		wantResponses []string
	}{
		{
			name:          "multi word trigger",
			trigger:       "Good Morning",
			response:      " Morning to you too! ",
			want:          "Thank you! I've learned a new greeting: 'good morning' with response 'Morning to you too!'.",
			wantResponses: []string{"Morning to you too!"},
		},
		{
			name:     "blank response",
			trigger:  "good morning",
			response: "  ",
			want:     "No that's wrong. Use 'learn greeting: greeting response'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, &knowledge.Snapshot{})
			got, err := NewResolver(store).TeachGreeting(tt.trigger, tt.response)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			greeting, ok := store.Greeting("good morning")
			if tt.wantResponses == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantResponses, greeting.Responses)
		})
	}
}

func TestIsLearnCommand(t *testing.T) {
	assert.True(t, IsLearnCommand("learn: cat a small feline"))
	assert.True(t, IsLearnCommand("Learn:cat"))
	assert.False(t, IsLearnCommand(" learn: cat"))
	assert.False(t, IsLearnCommand("learn greeting: yo Yo!"))
	assert.True(t, IsLearnGreetingCommand("LEARN GREETING: yo Yo!"))
	assert.False(t, IsLearnGreetingCommand("learn: greeting"))
}
