package done

import (
	"context"
	"fmt"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/printers"
	"soulsync.dev/soulsync/pkg/store"
)

// Done toggles an item's completion, so it un-completes a completed item.
type Done struct {
	ID string

	KV store.KV
}

func (n *Done) Do(ctx context.Context) error {
	c := bucket.NewController(n.KV)
	if err := c.Sync(ctx); err != nil {
		return err
	}
	item, ok := c.Item(n.ID)
	if !ok {
		return fmt.Errorf("no item with id %s", n.ID)
	}
	if err := c.ToggleCompletion(ctx, item); err != nil {
		return err
	}
	if err := c.Sync(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.TitleWithCount("bucket list", len(c.Items()))
	pp.BucketList(c.Items()...)
	return nil
}
