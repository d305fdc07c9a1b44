package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/johnhelf/folder-insight/cmd"
	"github.com/johnhelf/folder-insight/pkg/buildinfo"
	"github.com/johnhelf/folder-insight/pkg/flagparse"
	"github.com/johnhelf/folder-insight/pkg/plog"
)

// run encapsulates the main application logic and returns an error if
// something goes wrong, allowing the main function to handle exit codes.
func run(ctx context.Context) error {
	command, path, flagMap, err := flagparse.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	switch command {
	case flagparse.None:
		// Help was printed by the parser.
		return nil
	case flagparse.Version:
		return cmd.RunVersion(buildinfo.Name, buildinfo.Version)
	case flagparse.Analyze:
		return cmd.RunAnalyze(ctx, path, flagMap)
	case flagparse.Largest:
		return cmd.RunLargest(ctx, path, flagMap)
	case flagparse.Export:
		return cmd.RunExport(ctx, path, flagMap)
	case flagparse.Open:
		return cmd.RunOpen(path)
	default:
		return fmt.Errorf("internal error: unknown command %d", command)
	}
}

func main() {
	// Set up a context that is canceled when an interrupt signal is received.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx); err != nil {
		plog.Error(buildinfo.Name+" exited with error", "error", err)
		os.Exit(1)
	}
}
