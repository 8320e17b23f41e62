package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/eliana/internal/knowledge"
	"github.com/at-ishikawa/eliana/internal/text"
)

type validationResult struct {
	Path      string
	Words     int
	Greetings int
	Errors    []string
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and the knowledge file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			violations, err := knowledge.ValidateFile(cfg.Knowledge.DataFile)
			if err != nil {
				return fmt.Errorf("knowledge.ValidateFile() > %w", err)
			}
			result := validationResult{Path: cfg.Knowledge.DataFile, Errors: violations}
			if len(violations) == 0 {
				store, err := openStore(cfg)
				if err != nil {
					return err
				}
				result = validateKnowledge(store)
			}
			if err := displayValidationResults(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
			}
			return nil
		},
	}
}

func validateKnowledge(store *knowledge.Store) validationResult {
	result := validationResult{Path: store.Path()}

	words := store.Words()
	result.Words = len(words)
	for _, entry := range words {
		if entry.Word == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("an empty word has the meaning %q", entry.Meaning))
		}
		if !text.ValidMeaning(entry.Meaning) {
			result.Errors = append(result.Errors, fmt.Sprintf("word %q has an empty meaning", entry.Word))
		}
	}

	greetings := store.Greetings()
	result.Greetings = len(greetings)
	for _, entry := range greetings {
		for i, response := range entry.Responses {
			if !text.ValidMeaning(response) {
				result.Errors = append(result.Errors, fmt.Sprintf("greeting %q has an empty response at %d", entry.Trigger, i))
			}
		}
	}
	return result
}

func displayValidationResults(w io.Writer, result validationResult) error {
	if _, err := fmt.Fprintf(w, "=== Validation Results: %s ===\n", result.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Words: %d\nGreetings: %d\n", result.Words, result.Greetings); err != nil {
		return err
	}
	if len(result.Errors) == 0 {
		_, err := fmt.Fprintln(w, "✓ All validations passed!")
		return err
	}

	if _, err := fmt.Fprintf(w, "✗ Errors (%d):\n", len(result.Errors)); err != nil {
		return err
	}
	for _, message := range result.Errors {
		if _, err := fmt.Fprintf(w, "  - %s\n", message); err != nil {
			return err
		}
	}
	return nil
}
