package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/runner/folders"
	"tableflip.dev/keepsake/pkg/store"
)

func addSelect(topLevel *cobra.Command) {
	all := false

	cmd := &cobra.Command{
		Use:   "select [folder]",
		Short: "Choose the folder the gallery shows.",
		Example: `
keepsake select trips
keepsake select --all
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := folders.Select{KV: kv, All: all}
			if len(args) == 1 {
				s.Name = args[0]
			} else {
				s.All = true
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Select the built-in All Photos view.")

	topLevel.AddCommand(cmd)
}
