// Package report persists scan results as gzip-compressed JSON snapshots.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/pgzip"

	"github.com/johnhelf/folder-insight/pkg/largest"
	"github.com/johnhelf/folder-insight/pkg/scan"
)

// Level selects the compression effort for written snapshots.
type Level string

const (
	Fastest Level = "fastest"
	Default Level = "default"
	Best    Level = "best"
)

func (l Level) gzipLevel() int {
	switch l {
	case Fastest:
		return pgzip.BestSpeed
	case Best:
		return pgzip.BestCompression
	default:
		return pgzip.DefaultCompression
	}
}

// Entry is one directory aggregate in a snapshot.
type Entry struct {
	Path      string `json:"path"`
	Size      uint64 `json:"size"`
	FileCount uint64 `json:"file_count"`
}

// Snapshot is the on-disk report format.
type Snapshot struct {
	GeneratedAt  time.Time      `json:"generated_at"`
	Root         string         `json:"root"`
	Entries      []Entry        `json:"entries"`
	LargestFiles []largest.File `json:"largest_files,omitempty"`
}

// FromCache builds a snapshot from the current cache contents.
func FromCache(root string, cache *scan.Cache) *Snapshot {
	items := cache.Snapshot()
	entries := make([]Entry, 0, len(items))
	for path, record := range items {
		entries = append(entries, Entry{Path: path, Size: record.Size, FileCount: record.FileCount})
	}
	return &Snapshot{
		GeneratedAt: time.Now().UTC(),
		Root:        root,
		Entries:     entries,
	}
}

// Write stores the snapshot at path as gzipped JSON. The file is written to
// a temp file in the target directory first and renamed into place, so a
// failed write never leaves a truncated report behind.
func Write(snapshot *Snapshot, path string, level Level) (retErr error) {
	f, err := os.CreateTemp(filepath.Dir(path), "folder-insight-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp report: %w", err)
	}
	tempName := f.Name()
	defer func() {
		if retErr != nil {
			f.Close()
			os.Remove(tempName)
		}
	}()

	gz, err := pgzip.NewWriterLevel(f, level.gzipLevel())
	if err != nil {
		return fmt.Errorf("failed to create gzip writer: %w", err)
	}
	enc := json.NewEncoder(gz)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to flush gzip stream: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp report: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("failed to rename temp report to final path: %w", err)
	}
	return nil
}

// Read loads a snapshot written by Write.
func Read(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer gz.Close()

	var snapshot Snapshot
	if err := json.NewDecoder(gz).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &snapshot, nil
}
