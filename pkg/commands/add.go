package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/add"
	"soulsync.dev/soulsync/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.ItemOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a bucket list item.",
		Example: `
soulsync add "Travel to Japan" -d "Explore Tokyo and Kyoto."
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       strings.Join(args, " "),
				Description: io.Description,
				KV:          kv,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDescriptionArg(cmd, io)

	topLevel.AddCommand(cmd)
}
