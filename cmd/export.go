package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/johnhelf/folder-insight/pkg/largest"
	"github.com/johnhelf/folder-insight/pkg/plog"
	"github.com/johnhelf/folder-insight/pkg/report"
	"github.com/johnhelf/folder-insight/pkg/scan"
)

// RunExport scans the target directory to completion and writes the
// per-directory aggregates plus the largest files as a compressed report.
func RunExport(ctx context.Context, path string, flagMap map[string]any) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}
	runConfig, err := setupRunConfig(target, flagMap)
	if err != nil {
		return err
	}

	out, _ := flagMap["out"].(string)
	if out == "" {
		out = filepath.Base(target) + "-report.json.gz"
	}

	sink := scan.NewChannelSink(runConfig.Scan.EventBufferSize)
	cache := scan.NewCache()
	scanner := scan.NewScanner(cache, scan.NewGuard(cache), sink, scan.NewScanMetrics(), runConfig.Scan.Workers)

	startTime := time.Now()
	node, err := scanner.AnalyzeDirectory(target)
	if err != nil {
		return err
	}

	// Drain updates until the target itself resolves; after that the cache
	// holds every directory in the tree.
	for done := false; !done; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-sink.C:
			done = update.Path == node.Path
		}
	}

	snapshot := report.FromCache(node.Path, cache)
	snapshot.LargestFiles, err = largest.Find(ctx, target, largest.Options{
		TopN:    runConfig.Largest.TopN,
		MinSize: runConfig.Largest.MinSize,
	})
	if err != nil {
		return fmt.Errorf("failed to collect largest files: %w", err)
	}

	if err := report.Write(snapshot, out, report.Level(runConfig.Report.Level)); err != nil {
		return err
	}

	duration := time.Since(startTime).Round(time.Millisecond)
	plog.Info("Report written", "path", out, "directories", len(snapshot.Entries), "duration", duration)
	return nil
}
