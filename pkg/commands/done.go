package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/done"
	"soulsync.dev/soulsync/pkg/store"
)

func addDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle an item's completion.",
		Example: `
soulsync done 0191f29e-1f4a-7c2e-9a71-0242ac120002
soulsync done --id 0191f29e-1f4a-7c2e-9a71-0242ac120002
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one id")
			}
			if len(args) == 1 {
				io.ID = args[0]
			}
			if io.ID == "" {
				return errors.New("requires an item id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := done.Done{
				ID: io.ID,
				KV: kv,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
