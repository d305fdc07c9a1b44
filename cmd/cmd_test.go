package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnhelf/folder-insight/pkg/config"
	"github.com/johnhelf/folder-insight/pkg/scan"
)

func TestResolveTarget(t *testing.T) {
	tmp := t.TempDir()

	got, err := resolveTarget(tmp + string(filepath.Separator) + "." + string(filepath.Separator))
	if err != nil {
		t.Fatal(err)
	}
	if got != tmp {
		t.Errorf("resolveTarget = %q, want %q", got, tmp)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err = resolveTarget("")
	if err != nil {
		t.Fatal(err)
	}
	if got != cwd {
		t.Errorf("empty path resolved to %q, want cwd %q", got, cwd)
	}
}

func TestSetupRunConfigMergesFlags(t *testing.T) {
	dir := t.TempDir()
	content := `{"scan":{"workers":2,"eventBufferSize":8,"metrics":true}}`
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	runConfig, err := setupRunConfig(dir, map[string]any{"workers": 5})
	if err != nil {
		t.Fatal(err)
	}
	if runConfig.Scan.Workers != 5 {
		t.Errorf("flag should win over file: workers = %d", runConfig.Scan.Workers)
	}
	if runConfig.Scan.EventBufferSize != 8 {
		t.Errorf("file value lost: eventBufferSize = %d", runConfig.Scan.EventBufferSize)
	}
}

func TestSetupRunConfigRejectsInvalid(t *testing.T) {
	if _, err := setupRunConfig(t.TempDir(), map[string]any{"level": "turbo"}); err == nil {
		t.Error("want validation error for bad report level")
	}
}

func TestPrintListing(t *testing.T) {
	size := uint64(2048)
	node := scan.FileNode{
		Name:  "root",
		Path:  "/root",
		IsDir: true,
		Children: []scan.FileNode{
			{Name: "docs", Path: "/root/docs", IsDir: true},
			{Name: "movie.mkv", Path: "/root/movie.mkv", Size: &size, FileCount: 1},
		},
	}

	var buf bytes.Buffer
	printListing(&buf, node)
	out := buf.String()

	if !strings.Contains(out, "docs") || !strings.Contains(out, "movie.mkv") {
		t.Fatalf("listing missing entries:\n%s", out)
	}
	if !strings.Contains(out, "...") {
		t.Errorf("pending directory should render as ...:\n%s", out)
	}
	if !strings.Contains(out, "2.0 KiB") {
		t.Errorf("file size should be humanized:\n%s", out)
	}
}
