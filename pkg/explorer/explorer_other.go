//go:build !windows && !darwin

package explorer

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

func reveal(path string, isDir bool) error {
	// xdg-open has no select syntax, so files open their parent directory.
	if !isDir {
		path = filepath.Dir(path)
	}
	cmd := exec.Command("xdg-open", path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start xdg-open: %w", err)
	}
	go cmd.Wait()
	return nil
}
