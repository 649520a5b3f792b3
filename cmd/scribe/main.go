// Package main is the entry point for scribe.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/scribe/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, done := parseFlags()
	if done {
		return code
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	if _, err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags reads the command line. When done is true the process
// should exit with code without running the application.
func parseFlags() (opts app.Options, code int, done bool) {
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (default scribe.toml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.FilePath, "file", "", "File to navigate; - reads standard input")
	flag.StringVar(&opts.FilePath, "f", "", "File to navigate (shorthand)")
	flag.StringVar(&opts.Start, "at", "0:0", "Starting cursor position as line:offset")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	flag.BoolVar(&opts.Trace, "trace", false, "Print the position after every motion")
	flag.BoolVar(&opts.Trace, "t", false, "Print the position after every motion (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scribe - move a cursor through a text buffer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scribe [options] motion...\n\n")
		fmt.Fprintf(os.Stderr, "Motions:\n")
		fmt.Fprintf(os.Stderr, "  up down left right home end   directional moves\n")
		fmt.Fprintf(os.Stderr, "  k j h l 0 $                   the same moves, vim style\n")
		fmt.Fprintf(os.Stderr, "  start eol                     aliases for home and end\n")
		fmt.Fprintf(os.Stderr, "  goto:LINE:OFFSET              jump to an absolute position\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  scribe -f notes.txt down down end       Print where the cursor ends up\n")
		fmt.Fprintf(os.Stderr, "  scribe -f notes.txt -at 0:8 -t down up  Trace every step\n")
		fmt.Fprintf(os.Stderr, "  cat notes.txt | scribe -f - goto:2:0    Read from standard input\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		return opts, 0, true
	}

	if showVersion {
		fmt.Printf("scribe %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, 0, true
	}

	// Remaining arguments are the motion script
	opts.Motions = flag.Args()

	return opts, 0, false
}
