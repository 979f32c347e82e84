package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"soulsync.dev/soulsync/pkg/printers"
	"soulsync.dev/soulsync/pkg/settings"
	"soulsync.dev/soulsync/pkg/store"
)

// Get prints the current settings, seeding the defaults if the remote
// object has never been written.
type Get struct {
	Output string

	KV store.KV
}

func (n *Get) Do(ctx context.Context) error {
	s := settings.NewStore(n.KV)
	if err := s.Sync(ctx); err != nil {
		return err
	}

	switch n.Output {
	case "json":
		b, err := json.Marshal(s.Current())
		if err != nil {
			return err
		}
		fmt.Println(string(b))

	default:
		pp := printers.PrettyPrint{}
		pp.Title("settings")
		pp.Settings(s.Current())
	}
	return nil
}

// Set writes one named setting and prints the result.
type Set struct {
	Key   string
	Value string

	KV store.KV
}

func (n *Set) Do(ctx context.Context) error {
	s := settings.NewStore(n.KV)
	if err := s.Sync(ctx); err != nil {
		return err
	}
	cfg := s.Current()
	if err := apply(&cfg, n.Key, n.Value); err != nil {
		return err
	}
	if err := s.Update(ctx, cfg); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("settings")
	pp.Settings(s.Current())
	return nil
}

func apply(cfg *settings.Settings, key, value string) error {
	switch key {
	case "numberOfStars":
		return setInt(&cfg.NumberOfStars, value)
	case "longPressDuration":
		return setInt(&cfg.LongPressDuration, value)
	case "numberOfMediaItems":
		return setInt(&cfg.NumberOfMediaItems, value)
	case "useDynamicBackground":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("useDynamicBackground: %w", err)
		}
		cfg.UseDynamicBackground = b
		return nil
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
}

func setInt(dst *int, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%d: must not be negative", v)
	}
	*dst = v
	return nil
}
