package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/commands/options"
	"tableflip.dev/keepsake/pkg/runner/folders"
	"tableflip.dev/keepsake/pkg/store"
)

func addFolders(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "List, add or delete photo folders.",
		Example: `
keepsake folders
keepsake folders add trips
keepsake folders delete trips --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := folders.List{KV: kv}
			return s.Do(context.Background())
		},
	}

	addFoldersAdd(cmd)
	addFoldersDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addFoldersAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new folder.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := folders.Add{KV: kv, Name: args[0]}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addFoldersDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a folder and every photo in it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := folders.Delete{KV: kv, Name: args[0], Confirm: co.Confirmer()}
			return s.Do(context.Background())
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}
