package options

import (
	"github.com/spf13/cobra"
)

// SenderOptions
type SenderOptions struct {
	FromName  string
	FromEmail string
}

func AddSenderArgs(cmd *cobra.Command, so *SenderOptions) {
	cmd.Flags().StringVar(&so.FromName, "from-name", "",
		"Name to sign the note with.")
	cmd.Flags().StringVar(&so.FromEmail, "from-email", "",
		"Reply-to address for the note.")
}
