package knowledge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/knowledge/mock_repository.go -package=mock_knowledge

// WordRepository defines operations for managing word meanings in a database.
type WordRepository interface {
	FindAll(ctx context.Context) ([]Entry, error)
	FindByWord(ctx context.Context, word string) (*Entry, error)
	Upsert(ctx context.Context, entry *Entry) error
}

// GreetingRepository defines operations for managing greeting responses in a database.
type GreetingRepository interface {
	FindAll(ctx context.Context) ([]GreetingEntry, error)
	Replace(ctx context.Context, entry *GreetingEntry) error
}

// DBWordRepository implements WordRepository using MySQL.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

// FindAll returns all word meanings.
func (r *DBWordRepository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries, "SELECT * FROM word_meanings ORDER BY word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(word_meanings) > %w", err)
	}
	return entries, nil
}

// FindByWord returns the entry for word, or nil if not found.
func (r *DBWordRepository) FindByWord(ctx context.Context, word string) (*Entry, error) {
	var entry Entry
	err := r.db.GetContext(ctx, &entry, "SELECT * FROM word_meanings WHERE word = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word_meaning) > %w", err)
	}
	return &entry, nil
}

// Upsert inserts or updates a word meaning.
func (r *DBWordRepository) Upsert(ctx context.Context, entry *Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO word_meanings (word, meaning)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE meaning = VALUES(meaning)`,
		entry.Word, entry.Meaning)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert word_meaning) > %w", err)
	}
	return nil
}

type greetingResponseRow struct {
	Trigger  string `db:"trigger_phrase"`
	Position int    `db:"position"`
	Response string `db:"response"`
}

// DBGreetingRepository implements GreetingRepository using MySQL.
type DBGreetingRepository struct {
	db *sqlx.DB
}

// NewDBGreetingRepository creates a new DBGreetingRepository.
func NewDBGreetingRepository(db *sqlx.DB) *DBGreetingRepository {
	return &DBGreetingRepository{db: db}
}

// FindAll returns all greetings with their responses in order.
func (r *DBGreetingRepository) FindAll(ctx context.Context) ([]GreetingEntry, error) {
	var rows []greetingResponseRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT trigger_phrase, position, response FROM greeting_responses ORDER BY trigger_phrase, position"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(greeting_responses) > %w", err)
	}

	var entries []GreetingEntry
	for _, row := range rows {
		if len(entries) == 0 || entries[len(entries)-1].Trigger != row.Trigger {
			entries = append(entries, GreetingEntry{Trigger: row.Trigger})
		}
		last := &entries[len(entries)-1]
		last.Responses = append(last.Responses, row.Response)
	}
	return entries, nil
}

// Replace overwrites all responses of a greeting in one transaction.
func (r *DBGreetingRepository) Replace(ctx context.Context, entry *GreetingEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM greeting_responses WHERE trigger_phrase = ?", entry.Trigger); err != nil {
		return fmt.Errorf("tx.ExecContext(delete greeting_responses) > %w", err)
	}
	for i, response := range entry.Responses {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO greeting_responses (trigger_phrase, position, response) VALUES (?, ?, ?)",
			entry.Trigger, i, response); err != nil {
			return fmt.Errorf("tx.ExecContext(insert greeting_response) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
