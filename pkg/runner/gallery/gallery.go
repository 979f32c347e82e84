package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"soulsync.dev/soulsync/pkg/blob"
	"soulsync.dev/soulsync/pkg/media"
	"soulsync.dev/soulsync/pkg/printers"
)

// List prints the media library, optionally shuffled and capped the way the
// explore grid displays it.
type List struct {
	Shuffled bool
	Limit    int
	Output   string

	Library *blob.Library
}

func (n *List) Do(ctx context.Context) error {
	items, err := n.Library.Fetch(ctx)
	if err != nil {
		return err
	}
	if n.Shuffled {
		media.Shuffle(items, rand.New(rand.NewSource(rand.Int63())))
	}
	if n.Limit > 0 && len(items) > n.Limit {
		items = items[:n.Limit]
	}

	switch n.Output {
	case "json":
		b, err := json.Marshal(items)
		if err != nil {
			return err
		}
		fmt.Println(string(b))

	default:
		pp := printers.PrettyPrint{}
		pp.TitleWithCount("gallery", len(items))
		pp.Gallery(items...)
	}
	return nil
}

// Delete removes one asset by download URI. Confirmation happens at the
// command layer before this runs.
type Delete struct {
	URI string

	Library *blob.Library
}

func (n *Delete) Do(ctx context.Context) error {
	if err := n.Library.Delete(ctx, n.URI); err != nil {
		return err
	}
	items, err := n.Library.Fetch(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("gallery", len(items))
	pp.Gallery(items...)
	return nil
}
