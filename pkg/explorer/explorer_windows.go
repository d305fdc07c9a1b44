//go:build windows

package explorer

import (
	"fmt"
	"os/exec"
)

func reveal(path string, isDir bool) error {
	var cmd *exec.Cmd
	if isDir {
		cmd = exec.Command("explorer.exe", path)
	} else {
		cmd = exec.Command("explorer.exe", "/select,"+path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start explorer: %w", err)
	}
	// explorer.exe is left running on its own; reap it in the background so
	// the process table stays clean if we outlive it.
	go cmd.Wait()
	return nil
}
