package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args, DefaultEnv()))
}

func run(args []string, env *Environment) int {
	flags, dirs, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if flags.version {
		fmt.Fprintln(env.Stdout, "md2tex "+Version)
		return ExitSuccess
	}
	if len(dirs) == 0 {
		fmt.Fprintln(env.Stderr, "md2tex: no manuscript directory given")
		return ExitUsage
	}
	if err := validateWorkers(flags.workers); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	size := resolvePoolSize(flags.workers)
	if flags.verbose {
		env.logf(flags.quiet, "pool size: %d", size)
	}

	if err := runBatch(ctx, dirs, size, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
