//go:build !windows

package volume

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func statsFor(path string) (Stats, error) {
	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		return Stats{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	bsize := uint64(fs.Bsize)
	return Stats{
		Total:     fs.Blocks * bsize,
		Free:      fs.Bfree * bsize,
		Available: fs.Bavail * bsize,
	}, nil
}
