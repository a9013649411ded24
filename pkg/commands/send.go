package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/commands/options"
	"tableflip.dev/keepsake/pkg/runner/send"
	"tableflip.dev/keepsake/pkg/sendnote"
)

func addSend(topLevel *cobra.Command) {
	so := &options.SenderOptions{}

	cmd := &cobra.Command{
		Use:   "send TO TEXT...",
		Short: "Email a love note to a configured recipient.",
		Long: "Send delivers a short note to one of the recipients configured\n" +
			"under email.recipients. The note is sent exactly once; the result\n" +
			"printed reflects what the mail service actually reported.",
		Example: `
keepsake send bear missing you today
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sendnote.LoadConfig()
			if err != nil {
				return err
			}
			s := send.Send{
				Transport: &sendnote.EmailJS{Config: cfg},
				Config:    cfg,
				To:        args[0],
				Message:   strings.Join(args[1:], " "),
				FromName:  so.FromName,
				FromEmail: so.FromEmail,
			}
			return s.Do(context.Background())
		},
	}

	options.AddSenderArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
