package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/eliana/internal/responder"
)

func newLearnCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "learn <word> <meaning...>",
		Short: "Teach the meaning of a word",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.TrimSpace(args[0])
			if word == "" || strings.ContainsFunc(word, unicode.IsSpace) {
				return fmt.Errorf("a word must not contain spaces: %q", args[0])
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			reply, err := responder.NewResolver(store).TeachWord(word, strings.Join(args[1:], " "))
			if err != nil {
				return fmt.Errorf("resolver.TeachWord() > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cfg.Chat.Name, reply)
			return err
		},
	}
	command.AddCommand(newLearnGreetingCommand())
	return command
}

func newLearnGreetingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "greeting <trigger> <response...>",
		Short: "Teach another response to a greeting",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			// The trigger may be quoted and contain spaces.
			reply, err := responder.NewResolver(store).TeachGreeting(args[0], strings.Join(args[1:], " "))
			if err != nil {
				return fmt.Errorf("resolver.TeachGreeting() > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cfg.Chat.Name, reply)
			return err
		},
	}
}
