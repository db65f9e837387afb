package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

// newRootCmd assembles the heesch root command and its four
// subcommands. Flags shared across every subcommand (--log-level,
// --log-format) are declared here as persistent flags, matching
// how cobra.Command composes a shared flag set with per-subcommand
// ones in the retrieved manifest-style CLIs this tree is modeled on.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "heesch",
		Short:         "Compute Heesch numbers of polyform shapes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format: console or json")

	root.AddCommand(newGenCmd())
	root.AddCommand(newSatCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newSurroundsCmd())

	return root
}

// newLogger builds the shared zerolog.Logger from the persistent
// --log-level/--log-format flags.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if logFormat == "json" {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func main() {
	defer func() {
		// Per the error taxonomy, a transform inversion on a
		// non-unimodular matrix is an invariant breach: it's fatal,
		// but the CLI boundary still turns it into a diagnostic and a
		// non-zero exit rather than a bare stack trace.
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "heesch: fatal: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "heesch: %v\n", err)
		os.Exit(1)
	}
}
