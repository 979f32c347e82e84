package samples

import (
	"context"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/printers"
	"soulsync.dev/soulsync/pkg/store"
)

// Samples adds the sample bucket-list items. Confirmation happens at the
// command layer before this runs.
type Samples struct {
	KV store.KV
}

func (n *Samples) Do(ctx context.Context) error {
	c := bucket.NewController(n.KV)
	err := c.AddSampleItems(ctx)
	if syncErr := c.Sync(ctx); syncErr != nil {
		return syncErr
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("bucket list", len(c.Items()))
	pp.BucketList(c.Items()...)
	return err
}
