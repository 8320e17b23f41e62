// Package datasync copies knowledge between the JSON knowledge file and the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/at-ishikawa/eliana/internal/knowledge"
)

// SyncResult tracks counts for each sync operation.
type SyncResult struct {
	WordsNew         int
	WordsUpdated     int
	WordsSkipped     int
	GreetingsNew     int
	GreetingsUpdated int
	GreetingsSkipped int
}

// SyncOptions controls sync behavior.
type SyncOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// KnowledgeSource lists what the knowledge file holds.
type KnowledgeSource interface {
	Words() []knowledge.Entry
	Greetings() []knowledge.GreetingEntry
}

// KnowledgeTarget receives knowledge read from the database.
type KnowledgeTarget interface {
	Snapshot() knowledge.Snapshot
	Replace(snapshot knowledge.Snapshot) error
}

// Exporter writes the knowledge file into the database.
type Exporter struct {
	wordRepo     knowledge.WordRepository
	greetingRepo knowledge.GreetingRepository
	writer       io.Writer
}

// NewExporter creates a new Exporter.
func NewExporter(wordRepo knowledge.WordRepository, greetingRepo knowledge.GreetingRepository, writer io.Writer) *Exporter {
	return &Exporter{
		wordRepo:     wordRepo,
		greetingRepo: greetingRepo,
		writer:       writer,
	}
}

// Export upserts words and replaces greetings that are new or, with UpdateExisting, changed.
func (exp *Exporter) Export(ctx context.Context, source KnowledgeSource, opts SyncOptions) (*SyncResult, error) {
	var result SyncResult

	existingWords, err := exp.wordRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("wordRepo.FindAll() > %w", err)
	}
	wordCache := make(map[string]string, len(existingWords))
	for _, entry := range existingWords {
		wordCache[entry.Word] = entry.Meaning
	}

	for _, entry := range source.Words() {
		existing, found := wordCache[entry.Word]
		switch {
		case !found:
			_, _ = fmt.Fprintf(exp.writer, "  [NEW]  %q\n", entry.Word)
			result.WordsNew++
		case existing == entry.Meaning || !opts.UpdateExisting:
			_, _ = fmt.Fprintf(exp.writer, "  [SKIP]  %q\n", entry.Word)
			result.WordsSkipped++
			continue
		default:
			_, _ = fmt.Fprintf(exp.writer, "  [UPDATE]  %q\n", entry.Word)
			result.WordsUpdated++
		}
		if opts.DryRun {
			continue
		}
		if err := exp.wordRepo.Upsert(ctx, &entry); err != nil {
			return nil, fmt.Errorf("wordRepo.Upsert(%s) > %w", entry.Word, err)
		}
	}

	existingGreetings, err := exp.greetingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("greetingRepo.FindAll() > %w", err)
	}
	greetingCache := make(map[string][]string, len(existingGreetings))
	for _, entry := range existingGreetings {
		greetingCache[entry.Trigger] = entry.Responses
	}

	for _, entry := range source.Greetings() {
		existing, found := greetingCache[entry.Trigger]
		switch {
		case !found:
			_, _ = fmt.Fprintf(exp.writer, "  [NEW]  greeting %q\n", entry.Trigger)
			result.GreetingsNew++
		case slices.Equal(existing, entry.Responses) || !opts.UpdateExisting:
			_, _ = fmt.Fprintf(exp.writer, "  [SKIP]  greeting %q\n", entry.Trigger)
			result.GreetingsSkipped++
			continue
		default:
			_, _ = fmt.Fprintf(exp.writer, "  [UPDATE]  greeting %q\n", entry.Trigger)
			result.GreetingsUpdated++
		}
		if opts.DryRun {
			continue
		}
		if err := exp.greetingRepo.Replace(ctx, &entry); err != nil {
			return nil, fmt.Errorf("greetingRepo.Replace(%s) > %w", entry.Trigger, err)
		}
	}

	return &result, nil
}

// Importer reads knowledge from the database into the knowledge file.
type Importer struct {
	wordRepo     knowledge.WordRepository
	greetingRepo knowledge.GreetingRepository
	writer       io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(wordRepo knowledge.WordRepository, greetingRepo knowledge.GreetingRepository, writer io.Writer) *Importer {
	return &Importer{
		wordRepo:     wordRepo,
		greetingRepo: greetingRepo,
		writer:       writer,
	}
}

// Import merges database knowledge into target. Entries only in target are kept.
func (imp *Importer) Import(ctx context.Context, target KnowledgeTarget, opts SyncOptions) (*SyncResult, error) {
	var result SyncResult
	snapshot := target.Snapshot()
	if snapshot.WordMeanings == nil {
		snapshot.WordMeanings = make(map[string]string)
	}
	if snapshot.PredefinedResponses == nil {
		snapshot.PredefinedResponses = make(map[string][]string)
	}

	words, err := imp.wordRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("wordRepo.FindAll() > %w", err)
	}
	for _, entry := range words {
		existing, found := snapshot.WordMeanings[entry.Word]
		switch {
		case !found:
			_, _ = fmt.Fprintf(imp.writer, "  [NEW]  %q\n", entry.Word)
			result.WordsNew++
		case existing == entry.Meaning || !opts.UpdateExisting:
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", entry.Word)
			result.WordsSkipped++
			continue
		default:
			_, _ = fmt.Fprintf(imp.writer, "  [UPDATE]  %q\n", entry.Word)
			result.WordsUpdated++
		}
		snapshot.WordMeanings[entry.Word] = entry.Meaning
	}

	greetings, err := imp.greetingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("greetingRepo.FindAll() > %w", err)
	}
	for _, entry := range greetings {
		existing, found := snapshot.PredefinedResponses[entry.Trigger]
		switch {
		case !found:
			_, _ = fmt.Fprintf(imp.writer, "  [NEW]  greeting %q\n", entry.Trigger)
			result.GreetingsNew++
		case slices.Equal(existing, entry.Responses) || !opts.UpdateExisting:
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  greeting %q\n", entry.Trigger)
			result.GreetingsSkipped++
			continue
		default:
			_, _ = fmt.Fprintf(imp.writer, "  [UPDATE]  greeting %q\n", entry.Trigger)
			result.GreetingsUpdated++
		}
		snapshot.PredefinedResponses[entry.Trigger] = entry.Responses
	}

	if opts.DryRun {
		return &result, nil
	}
	if err := target.Replace(snapshot); err != nil {
		return nil, fmt.Errorf("target.Replace() > %w", err)
	}
	return &result, nil
}
