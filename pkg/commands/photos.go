package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/commands/options"
	"tableflip.dev/keepsake/pkg/runner/photos"
	"tableflip.dev/keepsake/pkg/store"
)

func addPhotos(topLevel *cobra.Command) {
	po := &options.PhotoListOptions{}

	cmd := &cobra.Command{
		Use:   "photos",
		Short: "List the photos visible in the selected folder.",
		Example: `
keepsake photos
keepsake photos --liked
keepsake photos add beach.jpg sunset.png
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := photos.List{KV: kv, LikedOnly: po.LikedOnly, ShowIndex: po.ShowIndex}
			return s.Do(context.Background())
		},
	}

	options.AddPhotoListArgs(cmd, po)

	addPhotosAdd(cmd)
	addPhotosDelete(cmd)
	addPhotosView(cmd)

	topLevel.AddCommand(cmd)
}

func addPhotosAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add FILE...",
		Short: "Add image files to the selected folder.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := photos.Add{KV: kv, Files: args}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addPhotosDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	key := ""

	cmd := &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete one photo by visible index or derived key.",
		Args: func(cmd *cobra.Command, args []string) error {
			if key != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := photos.Delete{KV: kv, Key: key, Confirm: co.Confirmer()}
			if key == "" {
				if s.Index, err = strconv.Atoi(args[0]); err != nil {
					return err
				}
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Delete by derived photo key instead of index.")
	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}

func addPhotosView(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "view INDEX",
		Short: "Show the full detail of one photo.",
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
			s := photos.View{KV: kv, Index: i}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
