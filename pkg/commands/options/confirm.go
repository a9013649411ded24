package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/keepsake/pkg/prompt"
)

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddYesArg(cmd *cobra.Command, co *ConfirmOptions) {
	cmd.Flags().BoolVarP(&co.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}

// Confirmer returns the prompt to use given the flag.
func (co *ConfirmOptions) Confirmer() prompt.Confirmer {
	if co.Yes {
		return prompt.Always()
	}
	return prompt.Stdin()
}
