package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/johnhelf/folder-insight/pkg/normpath"
	"github.com/johnhelf/folder-insight/pkg/plog"
)

// Scanner computes recursive directory sizes and serves incremental
// directory listings backed by a shared Cache. All methods are safe for
// concurrent use.
type Scanner struct {
	cache   *Cache
	guard   *Guard
	sink    Sink
	metrics Metrics
	sem     *semaphore.Weighted

	// readDir is swapped out in tests to inject listing failures and faults.
	readDir func(path string) ([]os.DirEntry, error)
}

// NewScanner creates a Scanner with at most workers goroutines recursing
// concurrently. workers < 1 selects runtime.NumCPU(). A nil sink discards
// updates and nil metrics disables counters.
func NewScanner(cache *Cache, guard *Guard, sink Sink, metrics Metrics, workers int) *Scanner {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if sink == nil {
		sink = SinkFunc(func(SizeUpdate) {})
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Scanner{
		cache:   cache,
		guard:   guard,
		sink:    sink,
		metrics: metrics,
		sem:     semaphore.NewWeighted(int64(workers)),
		readDir: os.ReadDir,
	}
}

// Compute resolves the recursive aggregate for path, caching and announcing
// the result for path and every descendant directory resolved along the way.
// A cache hit returns immediately without emitting an update. The path is
// expected to be normalized already.
func (s *Scanner) Compute(path string) SizeRecord {
	if record, ok := s.cache.Get(path); ok {
		return record
	}

	var record SizeRecord
	var subdirs []string

	entries, err := s.readDir(path)
	if err != nil {
		// An unreadable directory contributes nothing, but the zero record
		// is still cached and announced below so observers converge.
		plog.Debug("Directory not readable, counting as empty", "path", path, "error", err)
		s.metrics.AddEntriesSkipped(1)
	}
	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())
		// DirEntry type information comes from lstat semantics, so a
		// symlink to a directory is counted as a plain entry here and
		// never recursed into.
		if entry.IsDir() {
			subdirs = append(subdirs, full)
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.metrics.AddEntriesSkipped(1)
			continue
		}
		record.Size += uint64(info.Size())
		record.FileCount++
		s.metrics.AddFilesScanned(1)
		s.metrics.AddBytesScanned(info.Size())
	}

	results := make([]SizeRecord, len(subdirs))
	var wg sync.WaitGroup
	for i, subdir := range subdirs {
		// Recurse on a pooled goroutine when a slot is free, otherwise
		// inline on the current goroutine. Waiting for a slot here could
		// deadlock because slot holders wait on their own children.
		if s.sem.TryAcquire(1) {
			wg.Add(1)
			go func(i int, subdir string) {
				defer wg.Done()
				defer s.sem.Release(1)
				results[i] = s.computeBranch(subdir)
			}(i, subdir)
		} else {
			results[i] = s.computeBranch(subdir)
		}
	}
	wg.Wait()

	for _, sub := range results {
		record.Size += sub.Size
		record.FileCount += sub.FileCount
	}

	// Insert before emitting so a listener reacting to the update already
	// observes the cached value.
	s.cache.Put(path, record)
	s.metrics.AddDirsScanned(1)
	plog.Debug("Emitting "+EventFolderSizeUpdated, "path", path, "size", record.Size, "file_count", record.FileCount)
	s.sink.Notify(SizeUpdate{Path: path, Size: record.Size, FileCount: record.FileCount})
	return record
}

// computeBranch isolates one subtree: a fault while sizing it yields a zero
// record and a zero update for that path instead of tearing down the whole
// scan.
func (s *Scanner) computeBranch(path string) (record SizeRecord) {
	defer func() {
		if r := recover(); r != nil {
			plog.Error("Recovered fault while sizing directory", "path", path, "panic", r)
			s.metrics.AddBranchFaults(1)
			record = SizeRecord{}
			s.sink.Notify(SizeUpdate{Path: path})
		}
	}()
	return s.Compute(path)
}

// AnalyzeDirectory lists the immediate children of path and, when no result
// is cached and no scan is already running, starts a background recursive
// scan whose progress arrives through the sink. The listing itself never
// recurses and returns what is known right now: cached directory sizes are
// filled in, unknown ones stay nil. An unreadable path yields an empty
// listing rather than an error; the error return is reserved for the host
// boundary.
func (s *Scanner) AnalyzeDirectory(path string) (FileNode, error) {
	root := normpath.Normalize(path)

	entries, err := s.readDir(root)
	if err != nil {
		plog.Warn("Could not list directory", "path", root, "error", err)
	}

	children := make([]FileNode, 0, len(entries))
	var baseSize uint64
	for _, entry := range entries {
		full := filepath.Join(root, entry.Name())
		node := FileNode{Name: entry.Name(), Path: full, IsDir: entry.IsDir()}
		if entry.IsDir() {
			if record, ok := s.cache.Get(full); ok {
				size := record.Size
				node.Size = &size
				node.FileCount = record.FileCount
			}
		} else {
			info, err := entry.Info()
			if err != nil {
				s.metrics.AddEntriesSkipped(1)
				continue
			}
			size := uint64(info.Size())
			node.Size = &size
			node.BaseSize = size
			node.FileCount = 1
			baseSize += size
		}
		children = append(children, node)
	}
	sortNodes(children)

	if s.guard.TryBegin(root) {
		plog.Debug("Starting background scan", "path", root)
		go s.scanDetached(root)
	}

	node := FileNode{
		Name:     nodeName(root),
		Path:     root,
		IsDir:    true,
		BaseSize: baseSize,
		Children: children,
	}
	if record, ok := s.cache.Get(root); ok {
		size := record.Size
		node.Size = &size
		node.FileCount = record.FileCount
	}
	return node, nil
}

// scanDetached runs the background scan claimed by a successful TryBegin.
// The guard is released even when the scan faults.
func (s *Scanner) scanDetached(root string) {
	defer s.guard.End(root)
	defer func() {
		if r := recover(); r != nil {
			plog.Error("Recovered fault in background scan", "path", root, "panic", r)
			s.metrics.AddBranchFaults(1)
			s.sink.Notify(SizeUpdate{Path: root})
		}
	}()
	s.Compute(root)
}
