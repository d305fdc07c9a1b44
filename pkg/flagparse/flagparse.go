package flagparse

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"

	"github.com/johnhelf/folder-insight/pkg/buildinfo"
)

// cliFlags holds pointers to all possible command-line flags.
// Fields are pointers so we can distinguish between "not registered for this
// command" (nil) and "registered but not set by user" (non-nil pointer to
// zero value).
type cliFlags struct {
	// Global
	LogLevel *string

	// Shared: Analyze / Export
	Workers     *int
	EventBuffer *int

	// Analyze specific
	Wait *bool

	// Shared: Largest / Export
	TopN    *int
	MinSize *string

	// Export specific
	Out   *string
	Level *string
}

func registerGlobalFlags(fs *flag.FlagSet, f *cliFlags) {
	f.LogLevel = fs.String("log-level", "info", "Set the logging level: 'debug', 'notice', 'info', 'warn', 'error'.")
}

func registerAnalyzeFlags(fs *flag.FlagSet, f *cliFlags) {
	f.Workers = fs.Int("workers", 0, "Number of goroutines sizing directories concurrently (0 = number of CPUs).")
	f.EventBuffer = fs.Int("event-buffer", 0, "Capacity of the size update event buffer.")
	f.Wait = fs.Bool("wait", true, "Wait for the background scan and print size updates as they resolve.")
}

func registerLargestFlags(fs *flag.FlagSet, f *cliFlags) {
	f.TopN = fs.Int("top", 0, "Number of largest files to report.")
	f.MinSize = fs.String("min-size", "", "Ignore files smaller than this size (e.g. '10MB', '1GiB').")
}

func registerExportFlags(fs *flag.FlagSet, f *cliFlags) {
	f.Out = fs.String("out", "", "Output file for the report (default '<dir>-report.json.gz').")
	f.Level = fs.String("level", "", "Report compression level: 'fastest', 'default', 'best'.")
	f.Workers = fs.Int("workers", 0, "Number of goroutines sizing directories concurrently (0 = number of CPUs).")
	f.EventBuffer = fs.Int("event-buffer", 0, "Capacity of the size update event buffer.")
	f.TopN = fs.Int("top", 0, "Number of largest files to include in the report.")
	f.MinSize = fs.String("min-size", "", "Ignore files smaller than this size (e.g. '10MB', '1GiB').")
}

// Parse parses the provided arguments (usually os.Args[1:]) and returns the
// command, its positional path argument (empty if none was given) and a map
// of the flags the user explicitly set.
func Parse(args []string) (Command, string, map[string]any, error) {
	if len(args) == 0 {
		fs := flag.NewFlagSet("main", flag.ContinueOnError)
		printTopLevelUsage(fs)
		return None, "", nil, nil
	}

	cmdStr := strings.ToLower(args[0])

	if cmdStr == "help" || cmdStr == "-h" || cmdStr == "-help" || cmdStr == "--help" {
		fs := flag.NewFlagSet("main", flag.ContinueOnError)
		printTopLevelUsage(fs)
		return None, "", nil, nil
	}

	f := &cliFlags{}

	command, err := ParseCommand(cmdStr)
	if err != nil {
		return None, "", nil, err
	}

	fs := flag.NewFlagSet(command.String(), flag.ContinueOnError)
	registerGlobalFlags(fs, f)

	switch command {
	case Analyze:
		registerAnalyzeFlags(fs, f)
		fs.Usage = func() {
			printSubcommandUsage(command, "Analyze a directory and resolve its recursive size.", fs)
		}
	case Largest:
		registerLargestFlags(fs, f)
		fs.Usage = func() {
			printSubcommandUsage(command, "Find the largest files under a directory.", fs)
		}
	case Export:
		registerExportFlags(fs, f)
		fs.Usage = func() {
			printSubcommandUsage(command, "Analyze a directory and export the results as a compressed report.", fs)
		}
	case Open:
		fs.Usage = func() {
			printSubcommandUsage(command, "Reveal a path in the platform file manager.", fs)
		}
	case Version:
		return command, "", nil, nil
	}

	if err := fs.Parse(args[1:]); err != nil {
		return command, "", nil, err
	}

	flagMap, err := flagsToMap(fs, f)
	if err != nil {
		return command, "", nil, err
	}
	return command, fs.Arg(0), flagMap, nil
}

func flagsToMap(fs *flag.FlagSet, f *cliFlags) (map[string]any, error) {
	// Only flags explicitly set by the user go into the map, so they can
	// selectively override the configuration file.
	usedFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { usedFlags[f.Name] = true })

	flagMap := make(map[string]any)

	addIfUsed(flagMap, usedFlags, "log-level", f.LogLevel)
	addIfUsed(flagMap, usedFlags, "workers", f.Workers)
	addIfUsed(flagMap, usedFlags, "event-buffer", f.EventBuffer)
	addIfUsed(flagMap, usedFlags, "wait", f.Wait)
	addIfUsed(flagMap, usedFlags, "top", f.TopN)
	addIfUsed(flagMap, usedFlags, "out", f.Out)
	addIfUsed(flagMap, usedFlags, "level", f.Level)

	if f.MinSize != nil && usedFlags["min-size"] {
		bytes, err := humanize.ParseBytes(*f.MinSize)
		if err != nil {
			return nil, fmt.Errorf("invalid -min-size %q: %w", *f.MinSize, err)
		}
		flagMap["min-size"] = bytes
	}

	return flagMap, nil
}

// addIfUsed adds the value of ptr to flagMap if ptr is not nil and the flag was set.
func addIfUsed[T any](flagMap map[string]any, usedFlags map[string]bool, name string, ptr *T) {
	if ptr != nil && usedFlags[name] {
		flagMap[name] = *ptr
	}
}

// printTopLevelUsage prints the main help message.
func printTopLevelUsage(fs *flag.FlagSet) {
	execName := filepath.Base(os.Args[0])
	fmt.Fprintf(fs.Output(), "%s(%s) ", buildinfo.Name, buildinfo.Version)
	fmt.Fprintf(fs.Output(), "A concurrent disk usage analyzer.\n\n")
	fmt.Fprintf(fs.Output(), heredoc.Doc(`
		Usage: %s <command> [flags] [path]

		Commands:
		  analyze     Analyze a directory and resolve its recursive size
		  largest     Find the largest files under a directory
		  export      Export scan results as a compressed report
		  open        Reveal a path in the platform file manager
		  version     Print the application version

		Run '%s <command> -help' for more information on a command.
	`), execName, execName)
}

// printSubcommandUsage prints the help message for a specific subcommand.
func printSubcommandUsage(command Command, desc string, fs *flag.FlagSet) {
	execName := filepath.Base(os.Args[0])
	fmt.Fprintf(fs.Output(), "%s(%s) ", buildinfo.Name, buildinfo.Version)
	fmt.Fprintf(fs.Output(), "A concurrent disk usage analyzer.\n\n")
	fmt.Fprintf(fs.Output(), "Usage of the %s command: %s %s [flags] [path]\n\n", command, execName, command)
	fmt.Fprintf(fs.Output(), "%s\n\n", desc)
	fmt.Fprintf(fs.Output(), "Flags:\n")
	fs.PrintDefaults()
}
