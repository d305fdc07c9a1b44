package flagparse

import (
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    Command
		wantErr bool
	}{
		{"analyze", Analyze, false},
		{"largest", Largest, false},
		{"export", Export, false},
		{"open", Open, false},
		{"version", Version, false},
		{"bogus", None, true},
		{"", None, true},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCommand(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAnalyze(t *testing.T) {
	command, path, flagMap, err := Parse([]string{"analyze", "-workers", "8", "-wait=false", "/data/projects"})
	if err != nil {
		t.Fatal(err)
	}
	if command != Analyze {
		t.Errorf("command = %v, want Analyze", command)
	}
	if path != "/data/projects" {
		t.Errorf("path = %q, want /data/projects", path)
	}
	if got, ok := flagMap["workers"].(int); !ok || got != 8 {
		t.Errorf("workers = %v, want 8", flagMap["workers"])
	}
	if got, ok := flagMap["wait"].(bool); !ok || got {
		t.Errorf("wait = %v, want false", flagMap["wait"])
	}
}

func TestParseOnlySetFlagsInMap(t *testing.T) {
	_, _, flagMap, err := Parse([]string{"analyze", "/data"})
	if err != nil {
		t.Fatal(err)
	}
	if len(flagMap) != 0 {
		t.Errorf("flagMap should only carry explicitly set flags, got %v", flagMap)
	}
}

func TestParseMinSize(t *testing.T) {
	_, _, flagMap, err := Parse([]string{"largest", "-min-size", "10MB", "/data"})
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := flagMap["min-size"].(uint64); !ok || got != 10*1000*1000 {
		t.Errorf("min-size = %v, want 10000000", flagMap["min-size"])
	}
}

func TestParseMinSizeInvalid(t *testing.T) {
	if _, _, _, err := Parse([]string{"largest", "-min-size", "lots", "/data"}); err == nil {
		t.Error("want error for unparsable size")
	}
}

func TestParseUnknownCommand(t *testing.T) {
	if _, _, _, err := Parse([]string{"defrag"}); err == nil {
		t.Error("want error for unknown command")
	}
}

func TestParseNoArgsShowsHelp(t *testing.T) {
	command, _, _, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if command != None {
		t.Errorf("command = %v, want None", command)
	}
}
