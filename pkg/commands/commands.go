package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"soulsync.dev/soulsync/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "soulsync",
		Short: base.Wrap80("A personal bucket list and media gallery, synced through a shared store."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDone(topLevel)
	addRemove(topLevel)
	addSamples(topLevel)
	addSeed(topLevel)
	addGallery(topLevel)
	addSettings(topLevel)
	addVersion(topLevel)
}
