package edit

import (
	"context"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/printers"
	"soulsync.dev/soulsync/pkg/store"
)

type Edit struct {
	ID          string
	Title       string
	Description string

	KV store.KV
}

func (n *Edit) Do(ctx context.Context) error {
	c := bucket.NewController(n.KV)
	if err := c.EditItem(ctx, n.ID, n.Title, n.Description); err != nil {
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
