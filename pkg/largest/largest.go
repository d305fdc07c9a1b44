// Package largest finds the biggest files under a directory tree using a
// parallel filesystem walk.
package largest

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/johnhelf/folder-insight/pkg/normpath"
	"github.com/johnhelf/folder-insight/pkg/plog"
)

// File is one result entry.
type File struct {
	Path string `json:"path"`
	Size uint64 `json:"size"`
}

// Options controls a search.
type Options struct {
	// TopN is the number of files to report. Values < 1 fall back to 10.
	TopN int
	// MinSize excludes files smaller than this many bytes.
	MinSize uint64
}

// tracker keeps the N largest files seen so far. Walk callbacks run on
// multiple goroutines, so all access goes through the mutex.
type tracker struct {
	mu    sync.Mutex
	limit int
	files []File
}

func (t *tracker) add(path string, size uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.files) < t.limit {
		t.files = append(t.files, File{Path: path, Size: size})
		return
	}
	minIdx := 0
	for i, f := range t.files {
		if f.Size < t.files[minIdx].Size {
			minIdx = i
		}
	}
	if size > t.files[minIdx].Size {
		t.files[minIdx] = File{Path: path, Size: size}
	}
}

// Find walks root and returns up to opts.TopN files sorted by size
// descending, ties broken by path. Symlinks are never followed and
// unreadable entries are skipped.
func Find(ctx context.Context, root string, opts Options) ([]File, error) {
	if opts.TopN < 1 {
		opts.TopN = 10
	}
	root = normpath.Normalize(root)

	t := &tracker{limit: opts.TopN}
	conf := &fastwalk.Config{Follow: false}

	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			plog.Debug("Skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		size := uint64(info.Size())
		if size < opts.MinSize {
			return nil
		}
		t.add(path, size)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	slices.SortFunc(t.files, func(a, b File) int {
		if a.Size != b.Size {
			if a.Size > b.Size {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Path, b.Path)
	})
	return t.files, nil
}
