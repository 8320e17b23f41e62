package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/eliana/internal/cli"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, conversation, err := loadConversation()
			if err != nil {
				return err
			}
			return cli.NewChatCLI(cfg.Chat.Name, conversation).Run(cmd.Context())
		},
	}
}
