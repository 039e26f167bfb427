package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses flags, runs the conversion and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, fs, err := parseFlags(args[1:], env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "carto2pdf %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.verbose, flags.quiet)

	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	}))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, flags, fs, env, logger); err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err, flags))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
