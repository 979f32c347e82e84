package blob

import (
	"context"
	"strings"
	"testing"
	"time"

	"soulsync.dev/soulsync/pkg/media"
)

func TestLibraryUploadNamesAndFetch(t *testing.T) {
	ctx := context.Background()
	store, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	at := time.UnixMilli(1756400000000)
	lib := &Library{Storage: store, Now: func() time.Time { return at }}

	item, err := lib.Upload(ctx, media.KindImage, "IMG_0042.JPG", strings.NewReader("jpeg"), 4, nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	path, err := PathFromURL(item.URI)
	if err != nil {
		t.Fatalf("uri: %v", err)
	}
	if path != "images/1756400000000-media.jpg" {
		t.Fatalf("unexpected object name: %s", path)
	}

	if _, err := lib.Upload(ctx, media.KindVideo, "clip.mp4", strings.NewReader("mp4"), 3, nil); err != nil {
		t.Fatalf("upload video: %v", err)
	}

	items, err := lib.Fetch(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	kinds := map[media.Kind]int{}
	for _, it := range items {
		kinds[it.Kind]++
	}
	if kinds[media.KindImage] != 1 || kinds[media.KindVideo] != 1 {
		t.Fatalf("kinds not tagged by prefix: %v", items)
	}
}

func TestLibraryDeleteByURI(t *testing.T) {
	ctx := context.Background()
	store, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	lib := &Library{Storage: store}

	item, err := lib.Upload(ctx, media.KindImage, "a.png", strings.NewReader("png"), 3, nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := lib.Delete(ctx, item.URI); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, err := lib.Fetch(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty library, got %v", items)
	}
}

func TestKindForFilename(t *testing.T) {
	if KindForFilename("movie.MP4") != media.KindVideo {
		t.Fatal("expected video for .mp4")
	}
	if KindForFilename("photo.jpeg") != media.KindImage {
		t.Fatal("expected image for .jpeg")
	}
	if KindForFilename("mystery.bin") != media.KindImage {
		t.Fatal("unknown extensions default to image")
	}
}
