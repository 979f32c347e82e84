package blob

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPathFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{{
		url:  "https://storage.soulsync.local/o/images%2F123-media.jpg?alt=media",
		want: "images/123-media.jpg",
	}, {
		url:  "https://firebasestorage.googleapis.com/v0/b/app/o/videos%2Fclip.mp4?alt=media&token=abc",
		want: "videos/clip.mp4",
	}, {
		url:  "https://storage.soulsync.local/o/images%2Fwith%20space.png?alt=media",
		want: "images/with space.png",
	}}
	for _, tt := range tests {
		got, err := PathFromURL(tt.url)
		if err != nil {
			t.Fatalf("%s: %v", tt.url, err)
		}
		if got != tt.want {
			t.Fatalf("%s: got %q want %q", tt.url, got, tt.want)
		}
	}
}

func TestPathFromURLRejectsForeignURLs(t *testing.T) {
	for _, url := range []string{
		"https://example.com/images/123.jpg",
		"https://storage.soulsync.local/o/?alt=media",
		"",
	} {
		if _, err := PathFromURL(url); !errors.Is(err, ErrNotStorageURL) {
			t.Fatalf("%q: expected ErrNotStorageURL, got %v", url, err)
		}
	}
}

func TestFSUploadListDownloadDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	body := strings.Repeat("x", 64*1024)
	var reports []int
	err = store.Upload(ctx, "images/1-media.jpg", strings.NewReader(body), int64(len(body)), func(pct int) {
		reports = append(reports, pct)
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(reports) < 2 || reports[0] != 0 || reports[len(reports)-1] != 100 {
		t.Fatalf("expected progress from 0 to 100, got %v", reports)
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Fatalf("progress went backwards: %v", reports)
		}
	}

	paths, err := store.List(ctx, "images")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(paths) != 1 || paths[0] != "images/1-media.jpg" {
		t.Fatalf("unexpected listing: %v", paths)
	}

	uri, err := store.DownloadURL(ctx, "images/1-media.jpg")
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	path, err := PathFromURL(uri)
	if err != nil || path != "images/1-media.jpg" {
		t.Fatalf("url does not round-trip: %q -> %q, %v", uri, path, err)
	}

	if err := store.Delete(ctx, "images/1-media.jpg"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "images/1-media.jpg"); err == nil {
		t.Fatal("expected an error deleting a missing object")
	}
}

func TestFSListMissingPrefix(t *testing.T) {
	store, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	paths, err := store.List(context.Background(), "videos")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected empty listing, got %v", paths)
	}
}
