package seed

import (
	"context"
	"fmt"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/printers"
	"soulsync.dev/soulsync/pkg/store"
)

// Seed runs the first-launch seeding, a no-op on every launch after the
// first.
type Seed struct {
	KV    store.KV
	Flags store.FlagStore
}

func (n *Seed) Do(ctx context.Context) error {
	s := &bucket.Seeder{Flags: n.Flags, KV: n.KV}
	seeded, err := s.Do(ctx)
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Println("already seeded")
		return nil
	}

	c := bucket.NewController(n.KV)
	if err := c.Sync(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.TitleWithCount("bucket list", len(c.Items()))
	pp.BucketList(c.Items()...)
	return nil
}
