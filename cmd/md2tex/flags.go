package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// buildFlags holds all flags for the build command.
type buildFlags struct {
	output    string
	figureDir string
	figures   bool
	strict    bool
	workers   int
	timeout   time.Duration
	verbose   bool
	quiet     bool
	version   bool
}

// parseFlags parses CLI arguments, returning the flags and the positional
// manuscript directories.
func parseFlags(args []string) (*buildFlags, []string, error) {
	flags := &buildFlags{}

	fs := flag.NewFlagSet("md2tex", flag.ContinueOnError)
	fs.StringVarP(&flags.output, "output", "o", "output", "output directory (relative to each manuscript)")
	fs.StringVar(&flags.figureDir, "figure-dir", "Figures", "directory figure paths resolve into")
	fs.BoolVarP(&flags.figures, "figures", "f", false, "regenerate figures before conversion")
	fs.BoolVar(&flags.strict, "strict", false, "treat warnings as errors")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel manuscript builds (0 = NumCPU)")
	fs.DurationVar(&flags.timeout, "timeout", 2*time.Minute, "timeout per figure generator")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: md2tex [flags] MANUSCRIPT_DIR...\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
