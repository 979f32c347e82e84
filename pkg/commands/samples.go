package commands

import (
	"context"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/samples"
	"soulsync.dev/soulsync/pkg/store"
)

func addSamples(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Add the sample bucket list items.",
		Example: `
soulsync samples --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ok, err := co.Confirm("Add the sample items to your list?")
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
			s := samples.Samples{KV: kv}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}
