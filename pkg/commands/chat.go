package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/commands/options"
	"tableflip.dev/keepsake/pkg/runner/chatlog"
	"tableflip.dev/keepsake/pkg/store"
)

func addChat(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Read or add to the little chat log.",
		Example: `
keepsake chat
keepsake chat say good morning
keepsake chat delete 3 --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := chatlog.List{KV: kv}
			return s.Do(context.Background())
		},
	}

	addChatSay(cmd)
	addChatDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addChatSay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "say TEXT...",
		Short: "Append a message stamped with the current time.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := chatlog.Say{KV: kv, Text: strings.Join(args, " ")}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addChatDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete one message by position.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			s := chatlog.Delete{KV: kv, Index: i, Confirm: co.Confirmer()}
			return s.Do(context.Background())
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}
