package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/eliana/internal/responder"
)

func newAskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <text...>",
		Short: "Reply to a single line without starting a conversation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, conversation, err := loadConversation()
			if err != nil {
				return err
			}

			reply, err := conversation.Handle(responder.NewSession(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("conversation.Handle() > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cfg.Chat.Name, reply)
			return err
		},
	}
}
