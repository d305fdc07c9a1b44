// Package normpath canonicalizes path strings into the stable textual form
// used as the key of the size cache and the in-progress set.
package normpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Normalize returns the canonical spelling of a path: the path is broken into
// components and rejoined in platform-native form, so redundant separators,
// trailing separators and interior "." segments never produce distinct cache
// keys for the same logical path.
//
// Normalization is purely syntactic. It never touches the filesystem: symlinks
// are not resolved and no case folding is applied, so on a case-insensitive
// filesystem two case-variant spellings remain distinct keys. This mirrors the
// behavior callers rely on and is a documented limitation, not a bug.
func Normalize(path string) string {
	return filepath.Clean(filepath.FromSlash(path))
}

// ExpandHome expands the tilde (~) prefix in a path to the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil // No tilde, return as-is.
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}

	// Replace the tilde with the home directory.
	return filepath.Join(home, path[1:]), nil
}
