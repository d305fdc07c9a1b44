package scan

import (
	"path/filepath"
	"slices"
	"strings"
)

// EventFolderSizeUpdated is the name of the push event carrying a SizeUpdate.
// It is emitted once per directory whose recursive aggregate has just been
// resolved, child directories strictly before their parent.
const EventFolderSizeUpdated = "folder-size-updated"

// SizeRecord is the recursive aggregate for a directory, including all
// descendants. Once inserted into the cache for a given path it is never
// mutated for the remainder of the process lifetime.
type SizeRecord struct {
	Size      uint64 `json:"size"`
	FileCount uint64 `json:"file_count"`
}

// SizeUpdate is the payload of the EventFolderSizeUpdated push event.
type SizeUpdate struct {
	Path      string `json:"path"`
	Size      uint64 `json:"size"`
	FileCount uint64 `json:"file_count"`
}

// FileNode represents one filesystem entry in a listing response.
//
// Size is nil while the recursive size of a directory is still being
// computed; plain files always carry their length. BaseSize is the sum of
// the sizes of files directly contained in a directory and never requires
// recursion. Children is populated only on the root node of a listing
// response; every entry inside it has Children == nil.
type FileNode struct {
	Name      string     `json:"name"`
	Path      string     `json:"path"`
	Size      *uint64    `json:"size"`
	BaseSize  uint64     `json:"base_size"`
	IsDir     bool       `json:"is_dir"`
	FileCount uint64     `json:"file_count"`
	Children  []FileNode `json:"children"`
}

// KnownSize returns the node's size, treating "not yet known" as 0.
func (n *FileNode) KnownSize() uint64 {
	if n.Size == nil {
		return 0
	}
	return *n.Size
}

// sortNodes orders listing entries for presentation: directories before
// files, larger entries first (an unknown size counts as 0), ties broken by
// case-insensitive name.
func sortNodes(nodes []FileNode) {
	slices.SortFunc(nodes, func(a, b FileNode) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		sizeA, sizeB := a.KnownSize(), b.KnownSize()
		if sizeA != sizeB {
			if sizeA > sizeB {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}

// nodeName derives the display name for a listing root from its path.
func nodeName(path string) string {
	if base := filepath.Base(path); base != "" {
		return base
	}
	return path
}
