package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "keepsake",
		Short: base.Wrap80("A pocket gallery of shared photos, notes and memories."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addFolders(topLevel)
	addSelect(topLevel)
	addPhotos(topLevel)
	addLike(topLevel)
	addNote(topLevel)
	addChat(topLevel)
	addMemory(topLevel)
	addMood(topLevel)
	addTab(topLevel)
	addSend(topLevel)
	addVersion(topLevel)
}
