package normpath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeEquivalentSpellings(t *testing.T) {
	// Different spellings of the same logical path must produce the same key.
	groups := [][]string{
		{"/tmp/data", "/tmp/data/", "/tmp//data", "/tmp/./data"},
		{"a/b/c", "a//b//c", "a/./b/c/"},
		{".", "./", "./."},
	}

	for _, group := range groups {
		want := Normalize(group[0])
		for _, spelling := range group[1:] {
			if got := Normalize(spelling); got != want {
				t.Errorf("Normalize(%q) = %q; want %q (same as Normalize(%q))",
					spelling, got, want, group[0])
			}
		}
	}
}

func TestNormalizeIsPureAndDeterministic(t *testing.T) {
	in := "/some/path/that/does/not/exist/../exist"
	first := Normalize(in)
	second := Normalize(in)
	if first != second {
		t.Errorf("Normalize not deterministic: %q != %q", first, second)
	}
}

func TestNormalizeDoesNotFoldCase(t *testing.T) {
	if Normalize("/tmp/Data") == Normalize("/tmp/data") {
		t.Error("Normalize folded case; case-variant spellings must stay distinct keys")
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "." {
		t.Errorf("Normalize(\"\") = %q; want %q", got, ".")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/documents", filepath.Join(home, "documents")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Errorf("ExpandHome(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ExpandHome(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
