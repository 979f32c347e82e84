package options

import (
	"github.com/spf13/cobra"
)

// GalleryOptions
type GalleryOptions struct {
	Shuffled bool
	Limit    int
}

func AddGalleryArgs(cmd *cobra.Command, o *GalleryOptions) {
	cmd.Flags().BoolVar(&o.Shuffled, "shuffled", false,
		"Shuffle the listing the way the explore grid does.")
	cmd.Flags().IntVar(&o.Limit, "limit", 0,
		"Cap the number of listed assets. 0 lists everything.")
}
