package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/app"
	teaui "tableflip.dev/keepsake/pkg/runner/tea"
	"tableflip.dev/keepsake/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
keepsake ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s, err := app.Load(kv)
			if err != nil {
				return err
			}
			return teaui.Run(s)
		},
	}

	topLevel.AddCommand(cmd)
}
