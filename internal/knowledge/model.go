// Package knowledge stores what Eliana knows: word meanings and greeting responses.
package knowledge

import "time"

// Entry is a word and its meaning.
type Entry struct {
	Word      string    `db:"word" yaml:"word"`
	Meaning   string    `db:"meaning" yaml:"meaning"`
	CreatedAt time.Time `db:"created_at" yaml:"-"`
	UpdatedAt time.Time `db:"updated_at" yaml:"-"`
}

// Greeting is the response list of a greeting trigger.
// Cursor picks the next response in round-robin order and is never persisted.
type Greeting struct {
	Responses []string
	Cursor    int
}

// GreetingEntry is a greeting trigger with its responses, used for listings and sync.
type GreetingEntry struct {
	Trigger   string   `yaml:"trigger"`
	Responses []string `yaml:"responses"`
}

// Snapshot is the persisted shape of the knowledge file.
type Snapshot struct {
	WordMeanings        map[string]string   `json:"word_meanings" yaml:"word_meanings"`
	PredefinedResponses map[string][]string `json:"predefined_responses" yaml:"predefined_responses"`
}
