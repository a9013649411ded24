package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/commands/options"
	"tableflip.dev/keepsake/pkg/runner/memory"
	"tableflip.dev/keepsake/pkg/store"
)

func addMemory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "memory [date]",
		Short: "Browse the calendar of saved memories.",
		Example: `
keepsake memory
keepsake memory 2026-02-14
keepsake memory set 2026-02-14 dinner at the old place
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := memory.Show{KV: kv}
			if len(args) == 1 {
				s.Date = args[0]
			}
			return s.Do(context.Background())
		},
	}

	addMemorySet(cmd)
	addMemoryDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addMemorySet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set DATE [text]",
		Short: "Save the memory for a date; empty text clears it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := memory.Set{KV: kv, Date: args[0], Text: strings.Join(args[1:], " ")}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addMemoryDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete DATE",
		Short: "Delete the memory saved for a date.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := memory.Delete{KV: kv, Date: args[0], Confirm: co.Confirmer()}
			return s.Do(context.Background())
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}
