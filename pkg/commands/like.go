package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/runner/like"
	"tableflip.dev/keepsake/pkg/store"
)

func addLike(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "like INDEX",
		Short: "Toggle the heart on a visible photo.",
		Example: `
keepsake like 0
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			s := like.Toggle{KV: kv, Index: i}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
