package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// FlagStore persists small device-local markers, such as the first-launch
// flag, outside the replicated key-value space.
type FlagStore interface {
	// GetItem returns the stored value and whether the key was present.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// LoadFlags creates a FlagStore rooted under the configured base path.
func LoadFlags(cfg Config) (FlagStore, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	base := filepath.Join(cfg.BasePath(), ".flags")
	return &flagStore{d: diskv.New(diskv.Options{
		BasePath:     base,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024,
	})}, nil
}

type flagStore struct {
	d *diskv.Diskv
}

func (f *flagStore) GetItem(key string) (string, bool, error) {
	val, err := f.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (f *flagStore) SetItem(key, value string) error {
	return f.d.Write(key, []byte(value))
}
