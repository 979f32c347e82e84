// Package blob is the remote object storage the media library lives in:
// listing, download URLs, uploads with progress, and deletion by path.
package blob

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
)

// ProgressFunc receives upload progress from 0 to 100.
type ProgressFunc func(pct int)

// Storage is the hosted-bucket contract. Object paths are slash-separated
// and relative to the bucket root.
type Storage interface {
	List(ctx context.Context, prefix string) ([]string, error)
	DownloadURL(ctx context.Context, path string) (string, error)
	Upload(ctx context.Context, path string, r io.Reader, size int64, progress ProgressFunc) error
	Delete(ctx context.Context, path string) error
}

// ErrNotStorageURL is returned when a URL does not carry an object path.
var ErrNotStorageURL = errors.New("blob: not a storage download URL")

// PathFromURL recovers the object path from a download URL: the escaped
// segment between the "/o/" marker and the query string.
func PathFromURL(rawURL string) (string, error) {
	start := strings.Index(rawURL, "/o/")
	if start < 0 {
		return "", ErrNotStorageURL
	}
	rest := rawURL[start+len("/o/"):]
	if q := strings.Index(rest, "?"); q >= 0 {
		rest = rest[:q]
	}
	if rest == "" {
		return "", ErrNotStorageURL
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", err
	}
	return path, nil
}
