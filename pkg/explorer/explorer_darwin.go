//go:build darwin

package explorer

import (
	"fmt"
	"os/exec"
)

func reveal(path string, isDir bool) error {
	var cmd *exec.Cmd
	if isDir {
		cmd = exec.Command("open", path)
	} else {
		cmd = exec.Command("open", "-R", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start Finder: %w", err)
	}
	go cmd.Wait()
	return nil
}
