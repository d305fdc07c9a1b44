package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnhelf/folder-insight/pkg/buildinfo"
	"github.com/johnhelf/folder-insight/pkg/plog"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "folder-insight.config.json"

type ScanConfig struct {
	// Workers bounds the goroutines sizing directories concurrently.
	// 0 selects the number of CPUs.
	Workers int `json:"workers"`
	// EventBufferSize is the capacity of the size update event buffer.
	EventBufferSize int `json:"eventBufferSize"`
	Metrics         bool `json:"metrics"`
}

type LargestConfig struct {
	TopN    int    `json:"topN"`
	MinSize uint64 `json:"minSize"`
}

type ReportConfig struct {
	// Level selects compression effort: 'fastest', 'default' or 'best'.
	Level string `json:"level"`
}

type Config struct {
	Version  string        `json:"version"`
	LogLevel string        `json:"logLevel"`
	Scan     ScanConfig    `json:"scan"`
	Largest  LargestConfig `json:"largest"`
	Report   ReportConfig  `json:"report"`
}

// NewDefault creates and returns a Config struct with sensible default values.
func NewDefault() Config {
	return Config{
		Version:  buildinfo.Version,
		LogLevel: "info",
		Scan: ScanConfig{
			Workers:         0,    // 0 = number of CPUs.
			EventBufferSize: 1024, // Generous; a full buffer stalls the scan.
			Metrics:         true,
		},
		Largest: LargestConfig{
			TopN:    10,
			MinSize: 0,
		},
		Report: ReportConfig{
			Level: "default",
		},
	}
}

// Load attempts to load a configuration from "folder-insight.config.json" in
// the given directory. If the file doesn't exist, it returns the default
// config without an error. If the file exists but fails to parse, it returns
// an error and a zero-value config.
func Load(dir string) (Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, fmt.Errorf("could not determine absolute path for config directory %s: %w", dir, err)
	}

	configPath := filepath.Join(absDir, ConfigFileName)

	file, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil // Config file doesn't exist, which is a normal case.
		}
		return Config{}, fmt.Errorf("error opening config file %s: %w", configPath, err)
	}
	defer file.Close()

	plog.Info("Loading configuration", "path", configPath)
	// Start with default values, then overwrite with the file's content.
	// This makes the config loading resilient to missing fields in the JSON file.
	config := NewDefault()
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file %s: %w", configPath, err)
	}

	if config.Version != buildinfo.Version {
		config.Version = buildinfo.Version
	}
	return config, nil
}

// Generate creates or overwrites a folder-insight.config.json file in the
// specified directory.
func Generate(config Config, dir string) error {
	configPath := filepath.Join(dir, ConfigFileName)
	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}

	if err := os.WriteFile(configPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	plog.Info("Successfully saved config file", "path", configPath)
	return nil
}

// Validate checks the configuration for logical errors and inconsistencies.
func (c *Config) Validate() error {
	if c.Scan.Workers < 0 {
		return fmt.Errorf("scan.workers cannot be negative")
	}
	if c.Scan.EventBufferSize < 1 {
		return fmt.Errorf("scan.eventBufferSize must be at least 1")
	}
	if c.Largest.TopN < 1 {
		return fmt.Errorf("largest.topN must be at least 1")
	}
	switch c.Report.Level {
	case "fastest", "default", "best":
	default:
		return fmt.Errorf("report.level must be 'fastest', 'default' or 'best', got %q", c.Report.Level)
	}
	switch c.LogLevel {
	case "debug", "notice", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logLevel must be 'debug', 'notice', 'info', 'warn' or 'error', got %q", c.LogLevel)
	}
	return nil
}

// MergeConfigWithFlags overlays explicitly set command-line flags onto the
// base configuration.
func MergeConfigWithFlags(base Config, setFlags map[string]any) Config {
	merged := base

	for name, value := range setFlags {
		switch name {
		case "log-level":
			merged.LogLevel = value.(string)
		case "workers":
			merged.Scan.Workers = value.(int)
		case "event-buffer":
			merged.Scan.EventBufferSize = value.(int)
		case "top":
			merged.Largest.TopN = value.(int)
		case "min-size":
			merged.Largest.MinSize = value.(uint64)
		case "level":
			merged.Report.Level = value.(string)
		default:
			plog.Debug("unhandled flag in MergeConfigWithFlags", "flag", name)
		}
	}
	return merged
}
