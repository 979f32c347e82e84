package add

import (
	"context"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/printers"
	"soulsync.dev/soulsync/pkg/store"
)

type Add struct {
	Title       string
	Description string

	KV store.KV
}

func (n *Add) Do(ctx context.Context) error {
	c := bucket.NewController(n.KV)
	if err := c.AddItem(ctx, n.Title, n.Description); err != nil {
		return err
	}
	if err := c.Sync(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("bucket list", len(c.Items()))
	pp.BucketList(c.Items()...)
	return nil
}
