package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/eliana/internal/text"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Inspect the words and greetings Eliana knows",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:  "lookup <word>",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			word := text.Normalize(strings.Join(args, " "))
			meaning, ok := store.Lookup(word)
			if !ok {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No meaning is known for %q\n", word)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", word, meaning)
			return err
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:  "list",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			for _, entry := range store.Words() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", entry.Word, entry.Meaning); err != nil {
					return err
				}
			}
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:  "greetings",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			for _, entry := range store.Greetings() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", entry.Trigger); err != nil {
					return err
				}
				for _, response := range entry.Responses {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", response); err != nil {
						return err
					}
				}
			}
			return nil
		},
	})
	return &rootCommand
}
