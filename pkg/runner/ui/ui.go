package ui

import (
	"context"

	"soulsync.dev/soulsync/pkg/blob"
	"soulsync.dev/soulsync/pkg/store"
	"soulsync.dev/soulsync/pkg/tui"
)

type UI struct {
	KV      store.KV
	Library *blob.Library
}

func (n *UI) Do(ctx context.Context) error {
	return tui.Run(n.KV, n.Library)
}
