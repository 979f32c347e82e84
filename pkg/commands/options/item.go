package options

import (
	"github.com/spf13/cobra"
)

// ItemOptions
type ItemOptions struct {
	Description string
	Completed   bool
	Pending     bool
}

func AddDescriptionArg(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Description for the item.")
}

func AddFilterArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().BoolVar(&o.Completed, "completed", false,
		"Only completed items.")
	cmd.Flags().BoolVar(&o.Pending, "pending", false,
		"Only items not completed yet.")
}
