package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name          string
		fileContent   string
		wantWords     map[string]string
		wantGreetings map[string][]string
		wantErr       bool
	}{
		{
			name:          "missing file uses seed data",
			wantWords:     seedWordMeanings,
			wantGreetings: seedGreetings,
		},
		{
			name: "persisted words replace seed words and greetings are merged",
			fileContent: `{
    "word_meanings": {"dog": "a loyal animal"},
    "predefined_responses": {
        "hi": ["Yo!"],
        "good morning": ["Morning!", "Rise and shine!"]
    }
}`,
			wantWords: map[string]string{"dog": "a loyal animal"},
			wantGreetings: func() map[string][]string {
				greetings := SeedSnapshot().PredefinedResponses
				greetings["hi"] = []string{"Yo!"}
				greetings["good morning"] = []string{"Morning!", "Rise and shine!"}
				return greetings
			}(),
		},
		{
			name:          "file without sections has no words",
			fileContent:   `{}`,
			wantWords:     map[string]string{},
			wantGreetings: seedGreetings,
		},
		{
			name:          "greetings without responses are skipped",
			fileContent:   `{"word_meanings": {}, "predefined_responses": {"yo": []}}`,
			wantWords:     map[string]string{},
			wantGreetings: seedGreetings,
		},
		{
			name:        "broken json",
			fileContent: `{"word_meanings": `,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "word_meanings.json")
			if tt.fileContent != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.fileContent), 0644))
			}

			got, err := Open(path)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)

			snapshot := got.Snapshot()
			assert.Equal(t, tt.wantWords, snapshot.WordMeanings)
			assert.Equal(t, tt.wantGreetings, snapshot.PredefinedResponses)
		})
	}
}

func TestOpen_WithSeedFile(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(`{
    "word_meanings": {"cat": "a small feline"},
    "predefined_responses": {"howdy": ["Howdy partner!"]}
}`), 0644))

	store, err := Open(filepath.Join(dir, "data.json"), WithSeedFile(seedPath))
	require.NoError(t, err)

	meaning, ok := store.Lookup("cat")
	assert.True(t, ok)
	assert.Equal(t, "a small feline", meaning)
	_, ok = store.Lookup("help")
	assert.False(t, ok)
	assert.True(t, store.IsGreeting("howdy"))
	assert.True(t, store.IsGreeting("hello"))

	_, err = Open(filepath.Join(dir, "data.json"), WithSeedFile(filepath.Join(dir, "missing.json")))
	assert.Error(t, err)
}

func TestStore_Define(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_meanings.json")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Define("Dog", "a loyal animal"))
	meaning, ok := store.Lookup("dog")
	assert.True(t, ok)
	assert.Equal(t, "a loyal animal", meaning)

	require.NoError(t, store.Define("dog", "a good boy"))
	meaning, _ = store.Lookup("dog")
	assert.Equal(t, "a good boy", meaning)

	reloaded, err := Open(path)
	require.NoError(t, err)
	meaning, ok = reloaded.Lookup("dog")
	assert.True(t, ok)
	assert.Equal(t, "a good boy", meaning)
}

func TestStore_Define_SaveError(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	store, err := Open(filepath.Join(dataDir, "word_meanings.json"))
	require.NoError(t, err)

	_, _ = store.NextGreetingResponse("hello")

	// the data directory turns into a regular file, so the save cannot create it
	require.NoError(t, os.WriteFile(dataDir, []byte("not a directory"), 0644))

	assert.Error(t, store.Define("dog", "a loyal animal"))
	_, ok := store.Lookup("dog")
	assert.False(t, ok)

	assert.Error(t, store.Define("anime", "changed"))
	meaning, ok := store.Lookup("anime")
	assert.True(t, ok)
	assert.Equal(t, seedWordMeanings["anime"], meaning)

	assert.Error(t, store.AddGreetingResponse("hello", "Well hello!"))
	greeting, ok := store.Greeting("hello")
	require.True(t, ok)
	assert.Equal(t, genericGreetingResponses, greeting.Responses)
	assert.Equal(t, 1, greeting.Cursor)

	assert.Error(t, store.AddGreetingResponse("yo", "Yo!"))
	assert.False(t, store.IsGreeting("yo"))
	assert.Equal(t, SeedSnapshot(), store.Snapshot())
}

func TestOpen_NormalizesPersistedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_meanings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
    "word_meanings": {"Dog": "a loyal animal", " Cat ": "a small feline", "Anime": "upper", "anime": "lower", "hi!": "a loud hi", "  ": "nothing"},
    "predefined_responses": {"Good Morning": ["Morning!"]}
}`), 0644))

	store, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Word: "anime", Meaning: "lower"},
		{Word: "cat", Meaning: "a small feline"},
		{Word: "dog", Meaning: "a loyal animal"},
		{Word: "hi!", Meaning: "a loud hi"},
	}, store.Words())
	response, ok := store.NextGreetingResponse("good morning")
	assert.True(t, ok)
	assert.Equal(t, "Morning!", response)
}

func TestStore_NextGreetingResponse(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "word_meanings.json"))
	require.NoError(t, err)

	var got []string
	for i := 0; i < 4; i++ {
		response, ok := store.NextGreetingResponse("hi")
		require.True(t, ok)
		got = append(got, response)
	}
	assert.Equal(t, []string{
		genericGreetingResponses[0],
		genericGreetingResponses[1],
		genericGreetingResponses[2],
		genericGreetingResponses[0],
	}, got)

	_, ok := store.NextGreetingResponse("yo")
	assert.False(t, ok)
}

func TestStore_AddGreetingResponse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_meanings.json")
	store, err := Open(path)
	require.NoError(t, err)

	_, _ = store.NextGreetingResponse("hello")
	require.NoError(t, store.AddGreetingResponse("hello", "Well hello!"))

	greeting, ok := store.Greeting("hello")
	require.True(t, ok)
	assert.Equal(t, 0, greeting.Cursor)
	assert.Equal(t, append(append([]string(nil), genericGreetingResponses...), "Well hello!"), greeting.Responses)

	// seed lists are shared between triggers and must not be mutated
	hi, _ := store.Greeting("hi")
	assert.Equal(t, genericGreetingResponses, hi.Responses)

	require.NoError(t, store.AddGreetingResponse("Good Morning!", "Morning!"))
	response, ok := store.NextGreetingResponse("good morning")
	assert.True(t, ok)
	assert.Equal(t, "Morning!", response)

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, store.Snapshot(), reloaded.Snapshot())
}

func TestStore_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "word_meanings.json")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Define("cat", "a small feline"))
	require.NoError(t, store.AddGreetingResponse("yo", "Yo yo!"))
	require.NoError(t, store.Save())

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, store.Snapshot(), reloaded.Snapshot())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_meanings.json")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Replace(Snapshot{
		WordMeanings:        map[string]string{"dog": "a loyal animal"},
		PredefinedResponses: map[string][]string{"hi": {"Hello!"}},
	}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{
    "word_meanings": {
        "dog": "a loyal animal"
    },
    "predefined_responses": {
        "hi": [
            "Hello!"
        ]
    }
}
`, string(content))
}

func TestStore_Listings(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "word_meanings.json"))
	require.NoError(t, err)
	require.NoError(t, store.Replace(Snapshot{
		WordMeanings: map[string]string{"zebra": "striped", "anime": "Top tier entertainment"},
		PredefinedResponses: map[string][]string{
			"yo":    {"Yo!"},
			"hello": {"Hello!", "Hi!"},
			"empty": {},
		},
	}))

	assert.Equal(t, []Entry{
		{Word: "anime", Meaning: "Top tier entertainment"},
		{Word: "zebra", Meaning: "striped"},
	}, store.Words())
	assert.Equal(t, []GreetingEntry{
		{Trigger: "hello", Responses: []string{"Hello!", "Hi!"}},
		{Trigger: "yo", Responses: []string{"Yo!"}},
	}, store.Greetings())
	assert.False(t, store.IsGreeting("empty"))
}
