package commands

import (
	"context"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/runner/ui"
	"soulsync.dev/soulsync/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
soulsync ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Load(nil)
			if err != nil {
				return err
			}
			lib, err := loadLibrary()
			if err != nil {
				return err
			}
			i := ui.UI{KV: kv, Library: lib}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
