package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/mood"
	"tableflip.dev/keepsake/pkg/runner/moods"
	"tableflip.dev/keepsake/pkg/store"
)

func addMood(topLevel *cobra.Command) {
	validArgs := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		validArgs = append(validArgs, m.String())
	}

	cmd := &cobra.Command{
		Use:   "mood [mood]",
		Short: "Show or switch the color mood.",
		Example: `
keepsake mood
keepsake mood night
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				s := moods.Show{KV: kv}
				return s.Do(context.Background())
			}
			s := moods.Set{KV: kv, Mood: args[0]}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
