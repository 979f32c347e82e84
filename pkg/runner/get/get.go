package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/printers"
	"soulsync.dev/soulsync/pkg/store"
)

type Get struct {
	ShowID    bool
	Completed bool
	Pending   bool
	Output    string

	KV store.KV
}

func (n *Get) Do(ctx context.Context) error {
	if n.KV == nil {
		return errors.New("can not get, no store")
	}
	c := bucket.NewController(n.KV)
	if err := c.Sync(ctx); err != nil {
		return err
	}

	items := n.filtered(c.Items())

	switch n.Output {
	case "json":
		b, err := json.Marshal(items)
		if err != nil {
			return err
		}
		fmt.Println(string(b))

	default:
		pp := printers.PrettyPrint{ShowID: n.ShowID}
		pp.NewLine()
		pp.TitleWithCount("bucket list", len(items))
		pp.BucketList(items...)
	}
	return nil
}

func (n *Get) filtered(all []bucket.Item) []bucket.Item {
	if !n.Completed && !n.Pending {
		return all
	}
	c := make([]bucket.Item, 0, len(all))
	for _, item := range all {
		if n.Completed && item.Completed || n.Pending && !item.Completed {
			c = append(c, item)
		}
	}
	return c
}
