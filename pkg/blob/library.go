package blob

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"soulsync.dev/soulsync/pkg/media"
)

const (
	imagesPrefix = "images"
	videosPrefix = "videos"
)

// Library adapts object storage into the media grid's fetch/delete
// collaborators. Items under images/ render as images, videos/ as videos.
type Library struct {
	Storage Storage

	// Now is injectable for upload-name tests.
	Now func() time.Time
}

// Fetch lists both media prefixes and resolves a download URL per object.
func (l *Library) Fetch(ctx context.Context) ([]media.Item, error) {
	var items []media.Item
	for _, prefix := range []string{imagesPrefix, videosPrefix} {
		paths, err := l.Storage.List(ctx, prefix)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			uri, err := l.Storage.DownloadURL(ctx, path)
			if err != nil {
				return nil, err
			}
			items = append(items, media.Item{URI: uri, Kind: kindForPath(path)})
		}
	}
	return items, nil
}

// Delete removes the object a download URL points at.
func (l *Library) Delete(ctx context.Context, uri string) error {
	path, err := PathFromURL(uri)
	if err != nil {
		return err
	}
	return l.Storage.Delete(ctx, path)
}

// Upload stores a new asset under its kind's prefix with a timestamped
// object name, keeping the source file's extension. Returns the stored item.
func (l *Library) Upload(ctx context.Context, kind media.Kind, filename string, r io.Reader, size int64, progress ProgressFunc) (media.Item, error) {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	name := fmt.Sprintf("%d-media%s", now().UnixMilli(), objectExt(filename))
	path := prefixForKind(kind) + "/" + name
	if err := l.Storage.Upload(ctx, path, r, size, progress); err != nil {
		return media.Item{}, err
	}
	uri, err := l.Storage.DownloadURL(ctx, path)
	if err != nil {
		return media.Item{}, err
	}
	return media.Item{URI: uri, Kind: kind}, nil
}

func prefixForKind(kind media.Kind) string {
	if kind == media.KindVideo {
		return videosPrefix
	}
	return imagesPrefix
}

func kindForPath(path string) media.Kind {
	if strings.HasPrefix(path, videosPrefix+"/") {
		return media.KindVideo
	}
	return media.KindImage
}

// KindForFilename guesses the media kind from a file extension. Unknown
// extensions upload as images.
func KindForFilename(filename string) media.Kind {
	switch objectExt(filename) {
	case ".mp4", ".mov", ".webm", ".mkv", ".avi":
		return media.KindVideo
	}
	return media.KindImage
}
