package commands

import (
	"context"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/prefs"
	"soulsync.dev/soulsync/pkg/store"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or change the shared settings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSettingsGet(cmd)
	addSettingsSet(cmd)

	topLevel.AddCommand(cmd)
}

func addSettingsGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the current settings.",
		Example: `
soulsync settings get
soulsync settings get --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := prefs.Get{KV: kv}
			if output.JSON {
				s.Output = "json"
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addSettingsSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting.",
		Example: `
soulsync settings set numberOfMediaItems 25
soulsync settings set useDynamicBackground false
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := prefs.Set{
				Key:   args[0],
				Value: args[1],
				KV:    kv,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
