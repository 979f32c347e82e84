package commands

import (
	"context"

	"github.com/spf13/cobra"

	"soulsync.dev/soulsync/pkg/blob"
	"soulsync.dev/soulsync/pkg/commands/options"
	"soulsync.dev/soulsync/pkg/runner/gallery"
	"soulsync.dev/soulsync/pkg/runner/upload"
	"soulsync.dev/soulsync/pkg/store"
)

func addGallery(topLevel *cobra.Command) {
	gopts := &options.GalleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List the media library.",
		Example: `
soulsync gallery
soulsync gallery --shuffled --limit 10
soulsync gallery --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			lib, err := loadLibrary()
			if err != nil {
				return err
			}
			s := gallery.List{
				Shuffled: gopts.Shuffled,
				Limit:    gopts.Limit,
				Library:  lib,
			}
			if output.JSON {
				s.Output = "json"
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddGalleryArgs(cmd, gopts)
	options.AddOutputArg(cmd, output)

	addGalleryUpload(cmd)
	addGalleryRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addGalleryUpload(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local image or video.",
		Example: `
soulsync gallery upload ./IMG_0042.jpg
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			lib, err := loadLibrary()
			if err != nil {
				return err
			}
			s := upload.Upload{
				File:    args[0],
				Library: lib,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addGalleryRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "remove <uri>",
		Aliases: []string{"rm"},
		Short:   "Delete an asset by its download URI.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ok, err := co.Confirm("Delete this asset? This can not be undone.")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			lib, err := loadLibrary()
			if err != nil {
				return err
			}
			s := gallery.Delete{
				URI:     args[0],
				Library: lib,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}

func loadLibrary() (*blob.Library, error) {
	path, err := store.LoadMediaPath()
	if err != nil {
		return nil, err
	}
	fsys, err := blob.NewFS(path)
	if err != nil {
		return nil, err
	}
	return &blob.Library{Storage: fsys}, nil
}
