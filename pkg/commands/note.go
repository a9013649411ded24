package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/runner/note"
	"tableflip.dev/keepsake/pkg/store"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note INDEX [text]",
		Short: "Set or clear the note on a visible photo.",
		Example: `
keepsake note 0 the day we got lost
keepsake note 0
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			s := note.Set{KV: kv, Index: i, Text: strings.Join(args[1:], " ")}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
