package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/johnhelf/folder-insight/pkg/largest"
	"github.com/johnhelf/folder-insight/pkg/plog"
)

// RunLargest prints the largest files under the target directory.
func RunLargest(ctx context.Context, path string, flagMap map[string]any) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}
	runConfig, err := setupRunConfig(target, flagMap)
	if err != nil {
		return err
	}

	startTime := time.Now()
	files, err := largest.Find(ctx, target, largest.Options{
		TopN:    runConfig.Largest.TopN,
		MinSize: runConfig.Largest.MinSize,
	})
	if err != nil {
		return err
	}
	duration := time.Since(startTime).Round(time.Millisecond)

	if len(files) == 0 {
		fmt.Println("No matching files found.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "SIZE\tPATH\n")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\n", humanize.IBytes(f.Size), f.Path)
	}
	tw.Flush()

	plog.Info("Largest file search finished", "results", len(files), "duration", duration)
	return nil
}
