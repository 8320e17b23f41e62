package knowledge

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/at-ishikawa/eliana/internal/text"
)

// Store holds word meanings and greeting responses and writes every change
// through to a JSON file.
type Store struct {
	path      string
	meanings  map[string]string
	greetings map[string]*Greeting
}

// Option configures how a Store is opened.
type Option func(*openConfig)

type openConfig struct {
	seedFile string
}

// WithSeedFile replaces the built-in seed knowledge with the contents of a JSON file
// in the persisted shape. The seed is only used when the data file does not exist yet.
func WithSeedFile(path string) Option {
	return func(cfg *openConfig) {
		cfg.seedFile = path
	}
}

// Open loads the store backed by path.
//
// When path does not exist, the store starts from the seed words and greetings.
// Otherwise seed greetings are merged with the persisted ones, persisted triggers winning,
// and word meanings are taken from the file only.
func Open(path string, opts ...Option) (*Store, error) {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	seed := SeedSnapshot()
	if cfg.seedFile != "" {
		customSeed, err := readJSONFile[Snapshot](cfg.seedFile)
		if err != nil {
			return nil, fmt.Errorf("readJSONFile(%s) > %w", cfg.seedFile, err)
		}
		seed = mergeSeed(seed, customSeed)
	}

	store := &Store{
		path:      path,
		meanings:  make(map[string]string),
		greetings: make(map[string]*Greeting),
	}
	for trigger, responses := range seed.PredefinedResponses {
		store.setGreeting(trigger, responses)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Default().Debug("knowledge file not found, using seed data",
			slog.String("path", path),
		)
		for word, meaning := range normalizeKeys(seed.WordMeanings) {
			store.meanings[word] = meaning
		}
		return store, nil
	} else if err != nil {
		return nil, fmt.Errorf("os.Stat(%s) > %w", path, err)
	}

	persisted, err := readJSONFile[Snapshot](path)
	if err != nil {
		return nil, fmt.Errorf("readJSONFile(%s) > %w", path, err)
	}
	for word, meaning := range normalizeKeys(persisted.WordMeanings) {
		store.meanings[word] = meaning
	}
	for trigger, responses := range normalizeKeys(persisted.PredefinedResponses) {
		if len(responses) == 0 {
			slog.Default().Warn("skip a greeting without responses",
				slog.String("path", path),
				slog.String("trigger", trigger),
			)
			continue
		}
		store.setGreeting(trigger, responses)
	}
	return store, nil
}

// normalizeKeys returns entries with lowercased, trimmed keys so hand-edited files
// still match normalized input. Trailing punctuation is kept because stripping it
// again would move keys saved from input like "hi!!".
// A key already in that form wins over others that fold to it, and blank keys are dropped.
func normalizeKeys[V any](entries map[string]V) map[string]V {
	normalized := make(map[string]V, len(entries))
	for key, value := range entries {
		normalizedKey := strings.ToLower(strings.TrimSpace(key))
		if normalizedKey == "" {
			continue
		}
		if normalizedKey != key {
			if _, ok := entries[normalizedKey]; ok {
				continue
			}
		}
		normalized[normalizedKey] = value
	}
	return normalized
}

func mergeSeed(base, custom Snapshot) Snapshot {
	if custom.WordMeanings != nil {
		base.WordMeanings = custom.WordMeanings
	}
	for trigger, responses := range custom.PredefinedResponses {
		if len(responses) == 0 {
			continue
		}
		base.PredefinedResponses[trigger] = responses
	}
	return base
}

func (s *Store) setGreeting(trigger string, responses []string) {
	s.greetings[trigger] = &Greeting{
		Responses: append([]string(nil), responses...),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the meaning of word.
func (s *Store) Lookup(word string) (string, bool) {
	meaning, ok := s.meanings[word]
	return meaning, ok
}

// Define sets the meaning of word and saves the store.
// The caller is responsible for validating meaning.
// The previous meaning is restored when saving fails.
func (s *Store) Define(word, meaning string) error {
	key := text.Normalize(word)
	previous, existed := s.meanings[key]
	s.meanings[key] = meaning
	if err := s.Save(); err != nil {
		if existed {
			s.meanings[key] = previous
		} else {
			delete(s.meanings, key)
		}
		return fmt.Errorf("Save > %w", err)
	}
	return nil
}

// IsGreeting reports whether trigger exactly matches a known greeting.
func (s *Store) IsGreeting(trigger string) bool {
	_, ok := s.greetings[trigger]
	return ok
}

// Greeting returns a copy of the greeting for trigger.
func (s *Store) Greeting(trigger string) (Greeting, bool) {
	greeting, ok := s.greetings[trigger]
	if !ok {
		return Greeting{}, false
	}
	return Greeting{
		Responses: append([]string(nil), greeting.Responses...),
		Cursor:    greeting.Cursor,
	}, true
}

// NextGreetingResponse returns the next response of trigger in round-robin order
// and advances its cursor.
func (s *Store) NextGreetingResponse(trigger string) (string, bool) {
	greeting, ok := s.greetings[trigger]
	if !ok || len(greeting.Responses) == 0 {
		return "", false
	}
	response := greeting.Responses[greeting.Cursor%len(greeting.Responses)]
	greeting.Cursor = (greeting.Cursor + 1) % len(greeting.Responses)
	return response, true
}

// AddGreetingResponse appends response to trigger, creating the trigger if needed,
// resets its cursor and saves the store. The greeting is left unchanged when saving fails.
func (s *Store) AddGreetingResponse(trigger, response string) error {
	trigger = text.Normalize(trigger)
	greeting, ok := s.greetings[trigger]
	if !ok {
		greeting = &Greeting{}
		s.greetings[trigger] = greeting
	}
	previous := *greeting
	greeting.Responses = append(greeting.Responses[:len(greeting.Responses):len(greeting.Responses)], response)
	greeting.Cursor = 0

	if err := s.Save(); err != nil {
		if ok {
			*greeting = previous
		} else {
			delete(s.greetings, trigger)
		}
		return fmt.Errorf("Save > %w", err)
	}
	return nil
}

// Words returns all entries sorted by word.
func (s *Store) Words() []Entry {
	entries := make([]Entry, 0, len(s.meanings))
	for word, meaning := range s.meanings {
		entries = append(entries, Entry{Word: word, Meaning: meaning})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Greetings returns all greetings sorted by trigger.
func (s *Store) Greetings() []GreetingEntry {
	entries := make([]GreetingEntry, 0, len(s.greetings))
	for trigger, greeting := range s.greetings {
		entries = append(entries, GreetingEntry{
			Trigger:   trigger,
			Responses: append([]string(nil), greeting.Responses...),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Trigger < entries[j].Trigger
	})
	return entries
}

// Snapshot returns the persisted shape of the current state.
func (s *Store) Snapshot() Snapshot {
	snapshot := Snapshot{
		WordMeanings:        make(map[string]string, len(s.meanings)),
		PredefinedResponses: make(map[string][]string, len(s.greetings)),
	}
	for word, meaning := range s.meanings {
		snapshot.WordMeanings[word] = meaning
	}
	for trigger, greeting := range s.greetings {
		snapshot.PredefinedResponses[trigger] = append([]string(nil), greeting.Responses...)
	}
	return snapshot
}

// Replace swaps the whole state for snapshot and saves the store.
// Greetings without responses are dropped.
func (s *Store) Replace(snapshot Snapshot) error {
	s.meanings = make(map[string]string, len(snapshot.WordMeanings))
	for word, meaning := range snapshot.WordMeanings {
		s.meanings[word] = meaning
	}
	s.greetings = make(map[string]*Greeting, len(snapshot.PredefinedResponses))
	for trigger, responses := range snapshot.PredefinedResponses {
		if len(responses) == 0 {
			continue
		}
		s.setGreeting(trigger, responses)
	}

	if err := s.Save(); err != nil {
		return fmt.Errorf("Save > %w", err)
	}
	return nil
}

// Save writes the full state to the backing file.
func (s *Store) Save() error {
	if err := writeJSONFile(s.path, s.Snapshot()); err != nil {
		return fmt.Errorf("writeJSONFile(%s) > %w", s.path, err)
	}
	slog.Default().Debug("saved knowledge",
		slog.String("path", s.path),
		slog.Int("words", len(s.meanings)),
		slog.Int("greetings", len(s.greetings)),
	)
	return nil
}
