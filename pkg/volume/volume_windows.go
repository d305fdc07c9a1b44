//go:build windows

package volume

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func statsFor(path string) (Stats, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Stats{}, fmt.Errorf("invalid path %s: %w", path, err)
	}
	var available, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(p, &available, &total, &free); err != nil {
		return Stats{}, fmt.Errorf("GetDiskFreeSpaceEx %s: %w", path, err)
	}
	return Stats{Total: total, Free: free, Available: available}, nil
}
