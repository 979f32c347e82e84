package commands

import (
	"context"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/get"
	"soulsync.dev/soulsync/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.ItemOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List the bucket list.",
		Example: `
soulsync get
soulsync get --pending
soulsync get --completed --show-id
soulsync get --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:    io.ShowID,
				Completed: fo.Completed,
				Pending:   fo.Pending,
				KV:        kv,
			}
			if output.JSON {
				s.Output = "json"
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
