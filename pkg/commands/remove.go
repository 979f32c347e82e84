package commands

import (
	"context"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/remove"
	"soulsync.dev/soulsync/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a bucket list item.",
		Example: `
soulsync remove 0191f29e-1f4a-7c2e-9a71-0242ac120002
soulsync rm 0191f29e-1f4a-7c2e-9a71-0242ac120002 --yes
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ok, err := co.Confirm("Delete this item? This can not be undone.")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID: args[0],
				KV: kv,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}
