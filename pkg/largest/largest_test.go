package largest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindTopN(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "small.bin"), 1)
	writeFile(t, filepath.Join(tmp, "mid.bin"), 50)
	writeFile(t, filepath.Join(tmp, "sub", "big.bin"), 200)
	writeFile(t, filepath.Join(tmp, "sub", "deep", "huge.bin"), 900)

	files, err := Find(context.Background(), tmp, Options{TopN: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %+v", len(files), files)
	}
	wantSizes := []uint64{900, 200, 50}
	for i, want := range wantSizes {
		if files[i].Size != want {
			t.Errorf("files[%d].Size = %d, want %d", i, files[i].Size, want)
		}
	}
}

func TestFindMinSize(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "tiny.bin"), 10)
	writeFile(t, filepath.Join(tmp, "big.bin"), 1000)

	files, err := Find(context.Background(), tmp, Options{TopN: 10, MinSize: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Size != 1000 {
		t.Fatalf("got %+v, want only big.bin", files)
	}
}

func TestFindFewerThanN(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "only.bin"), 5)

	files, err := Find(context.Background(), tmp, Options{TopN: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
}

func TestFindCancelled(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.bin"), 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Find(ctx, tmp, Options{TopN: 10}); err == nil {
		t.Error("want error from cancelled context")
	}
}
