package explorer

import (
	"path/filepath"
	"testing"
)

func TestRevealMissingPath(t *testing.T) {
	err := Reveal(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("want error for missing path")
	}
}
