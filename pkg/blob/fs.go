package blob

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultBaseURL is the URL origin filesystem-backed download URLs use. The
// shape mirrors a hosted bucket so PathFromURL works on either.
const DefaultBaseURL = "https://storage.soulsync.local"

// FS is a filesystem-backed Storage rooted at a directory.
type FS struct {
	root    string
	baseURL string
}

// NewFS opens (and creates if needed) a bucket directory.
func NewFS(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("blob: open bucket: %w", err)
	}
	return &FS{root: root, baseURL: DefaultBaseURL}, nil
}

// List returns the object paths under prefix, sorted.
func (f *FS) List(ctx context.Context, prefix string) ([]string, error) {
	dir := filepath.Join(f.root, filepath.FromSlash(prefix))
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("blob: list %s: %w", prefix, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// DownloadURL returns the hosted-style URL for an object path.
func (f *FS) DownloadURL(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(filepath.Join(f.root, filepath.FromSlash(path))); err != nil {
		return "", fmt.Errorf("blob: %s: %w", path, err)
	}
	return f.baseURL + "/o/" + url.PathEscape(path) + "?alt=media", nil
}

// Upload writes the object, reporting progress as a 0-100 percentage of
// size. A zero progress callback is allowed.
func (f *FS) Upload(ctx context.Context, path string, r io.Reader, size int64, progress ProgressFunc) error {
	full := filepath.Join(f.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("blob: upload %s: %w", path, err)
	}
	w, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("blob: upload %s: %w", path, err)
	}
	defer w.Close()

	if progress != nil {
		progress(0)
	}
	var written int64
	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("blob: upload %s: %w", path, werr)
			}
			written += int64(n)
			if progress != nil && size > 0 {
				progress(int(written * 100 / size))
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("blob: upload %s: %w", path, rerr)
		}
	}
	if progress != nil {
		progress(100)
	}
	return nil
}

// Delete removes the object. A missing object is an error so callers can
// report a delete that did nothing.
func (f *FS) Delete(ctx context.Context, path string) error {
	if err := os.Remove(filepath.Join(f.root, filepath.FromSlash(path))); err != nil {
		return fmt.Errorf("blob: delete %s: %w", path, err)
	}
	return nil
}

// objectExt preserves the original file extension, lowercased.
func objectExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
