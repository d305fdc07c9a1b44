// Package explorer reveals paths in the platform file manager.
package explorer

import (
	"fmt"
	"os"

	"github.com/johnhelf/folder-insight/pkg/normpath"
	"github.com/johnhelf/folder-insight/pkg/plog"
)

// Reveal opens the platform file manager at path. Directories are opened
// directly, files are shown selected inside their parent directory where the
// platform supports it. The file manager is started detached; Reveal does
// not wait for it to exit.
func Reveal(path string) error {
	path = normpath.Normalize(path)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot reveal %s: %w", path, err)
	}
	plog.Debug("Revealing path in file manager", "path", path, "is_dir", info.IsDir())
	return reveal(path, info.IsDir())
}
