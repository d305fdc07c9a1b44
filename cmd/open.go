package cmd

import (
	"fmt"

	"github.com/johnhelf/folder-insight/pkg/explorer"
)

// RunOpen reveals the target path in the platform file manager.
func RunOpen(path string) error {
	if path == "" {
		return fmt.Errorf("the open command requires a path argument")
	}
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}
	return explorer.Reveal(target)
}
