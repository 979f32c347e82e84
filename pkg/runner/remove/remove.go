package remove

import (
	"context"
	"fmt"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/printers"
	"soulsync.dev/soulsync/pkg/store"
)

// Remove deletes a bucket-list item. Confirmation happens at the command
// layer before this runs.
type Remove struct {
	ID string

	KV store.KV
}

func (n *Remove) Do(ctx context.Context) error {
	c := bucket.NewController(n.KV)
	if err := c.Sync(ctx); err != nil {
		return err
	}
	if _, ok := c.Item(n.ID); !ok {
		return fmt.Errorf("no item with id %s", n.ID)
	}
	if err := c.DeleteItem(ctx, n.ID); err != nil {
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
