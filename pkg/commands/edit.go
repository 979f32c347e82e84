package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/edit"
	"soulsync.dev/soulsync/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.ItemOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Edit an item's title and description.",
		Example: `
soulsync edit 0191f29e-1f4a-7c2e-9a71-0242ac120002 "Travel to Japan" -d "Spring, for the cherry blossoms."
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          args[0],
				Title:       strings.Join(args[1:], " "),
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
