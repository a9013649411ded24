package options

import (
	"github.com/spf13/cobra"
)

// PhotoListOptions
type PhotoListOptions struct {
	LikedOnly bool
	ShowIndex bool
}

func AddPhotoListArgs(cmd *cobra.Command, po *PhotoListOptions) {
	cmd.Flags().BoolVar(&po.LikedOnly, "liked", false,
		"Show only liked photos.")
	cmd.Flags().BoolVar(&po.ShowIndex, "index", false,
		"Show the visible index of each photo.")
}
