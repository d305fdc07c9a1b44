package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/johnhelf/folder-insight/pkg/plog"
	"github.com/johnhelf/folder-insight/pkg/scan"
	"github.com/johnhelf/folder-insight/pkg/volume"
)

// RunAnalyze lists the target directory immediately, then follows the
// background scan until the recursive size of the target itself resolves.
func RunAnalyze(ctx context.Context, path string, flagMap map[string]any) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}
	runConfig, err := setupRunConfig(target, flagMap)
	if err != nil {
		return err
	}

	wait := true
	if v, ok := flagMap["wait"].(bool); ok {
		wait = v
	}

	sink := scan.NewChannelSink(runConfig.Scan.EventBufferSize)
	cache := scan.NewCache()
	var metrics scan.Metrics = scan.NopMetrics{}
	var scanMetrics *scan.ScanMetrics
	if runConfig.Scan.Metrics {
		scanMetrics = scan.NewScanMetrics()
		metrics = scanMetrics
	}
	scanner := scan.NewScanner(cache, scan.NewGuard(cache), sink, metrics, runConfig.Scan.Workers)

	if stats, err := volume.NewProber().StatsFor(target); err == nil {
		fmt.Printf("Volume: %s total, %s free\n\n", humanize.IBytes(stats.Total), humanize.IBytes(stats.Free))
	} else {
		plog.Debug("Could not read volume stats", "path", target, "error", err)
	}

	startTime := time.Now()
	node, err := scanner.AnalyzeDirectory(target)
	if err != nil {
		return err
	}
	printListing(os.Stdout, node)

	if !wait {
		return nil
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-sink.C:
			if !interactive {
				fmt.Printf("resolved %s  %s  (%s files)\n",
					update.Path, humanize.IBytes(update.Size), humanize.Comma(int64(update.FileCount)))
			}
			if update.Path != node.Path {
				continue
			}
			// The target itself resolved; every descendant is cached now.
			if interactive {
				resolved, err := scanner.AnalyzeDirectory(target)
				if err != nil {
					return err
				}
				fmt.Println()
				printListing(os.Stdout, resolved)
			}
			duration := time.Since(startTime).Round(time.Millisecond)
			fmt.Printf("\nTotal: %s in %s files (%s)\n",
				humanize.IBytes(update.Size), humanize.Comma(int64(update.FileCount)), duration)
			if scanMetrics != nil {
				scanMetrics.Log()
			}
			return nil
		}
	}
}

func printListing(w io.Writer, node scan.FileNode) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "TYPE\tSIZE\tFILES\tNAME\n")
	for _, child := range node.Children {
		kind := "file"
		if child.IsDir {
			kind = "dir"
		}
		size, files := "...", "..."
		if child.Size != nil {
			size = humanize.IBytes(*child.Size)
			files = humanize.Comma(int64(child.FileCount))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", kind, size, files, child.Name)
	}
	tw.Flush()
}
