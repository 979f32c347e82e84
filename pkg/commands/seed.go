package commands

import (
	"context"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/seed"
	"soulsync.dev/soulsync/pkg/store"
)

func addSeed(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the starter items on first launch.",
		Long:  options.Wrap80("Write the starter items if this device has never seeded before. A no-op on every launch after the first."),
		Example: `
soulsync seed
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			flags, err := store.LoadFlags(nil)
			if err != nil {
				return err
			}
			s := seed.Seed{KV: kv, Flags: flags}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
