package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"soulsync.dev/soulsync/pkg/blob"
	"soulsync.dev/soulsync/pkg/printers"
)

// Upload stores a local file in the media library with a progress line.
type Upload struct {
	File string

	Library *blob.Library
}

func (n *Upload) Do(ctx context.Context) error {
	f, err := os.Open(n.File)
	if err != nil {
		return err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	name := filepath.Base(n.File)
	kind := blob.KindForFilename(name)
	item, err := n.Library.Upload(ctx, kind, name, f, fi.Size(), func(pct int) {
		pp.Progress(name, pct)
	})
	if err != nil {
		return err
	}
	fmt.Printf("uploaded %s as %s\n", name, item.URI)
	return nil
}
