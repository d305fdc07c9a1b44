package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnhelf/folder-insight/pkg/config"
	"github.com/johnhelf/folder-insight/pkg/normpath"
	"github.com/johnhelf/folder-insight/pkg/plog"
)

// resolveTarget turns the positional path argument into an absolute,
// normalized path. An empty argument means the current directory.
func resolveTarget(path string) (string, error) {
	if path == "" {
		path = "."
	}
	expanded, err := normpath.ExpandHome(path)
	if err != nil {
		return "", fmt.Errorf("could not expand path %s: %w", path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("could not determine absolute path for %s: %w", path, err)
	}
	return normpath.Normalize(abs), nil
}

// setupRunConfig loads the configuration next to the target (directories
// only, files fall back to defaults), overlays the explicitly set flags,
// validates the result and applies the log level.
func setupRunConfig(target string, flagMap map[string]any) (config.Config, error) {
	loaded := config.NewDefault()
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		loaded, err = config.Load(target)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	runConfig := config.MergeConfigWithFlags(loaded, flagMap)
	if err := runConfig.Validate(); err != nil {
		return config.Config{}, err
	}

	plog.SetLevel(plog.LevelFromString(runConfig.LogLevel))
	return runConfig, nil
}
