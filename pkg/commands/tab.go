package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/runner/tabs"
	"tableflip.dev/keepsake/pkg/store"
)

func addTab(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tab [name|index]",
		Short: "Show or switch the active navigation tab.",
		Example: `
keepsake tab
keepsake tab calendar
keepsake tab 2
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tabs.Names,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				s := tabs.Show{KV: kv}
				return s.Do(context.Background())
			}

			i, err := strconv.Atoi(args[0])
			if err != nil {
				i = -1
				for j, name := range tabs.Names {
					if name == args[0] {
						i = j
					}
				}
				if i < 0 {
					return fmt.Errorf("unknown tab %q", args[0])
				}
			}
			s := tabs.Set{KV: kv, Index: i}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
