// Command jugglefest assigns jugglers to circuits and writes the result.
//
// Usage:
//
//	jugglefest [input]
//	jugglefest generate --circuits 2000 --per-circuit 6 --preferences 10 > jugglefest.txt
//
// With no argument the input is jugglefest.txt. The assignment is written to
// output.txt and, for jugglefest.txt, the sum of the juggler IDs in circuit
// 1970 is printed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the streams and the logger factory of one CLI invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	newLogger func(verbose bool) (*zap.Logger, error)
	logger    *zap.Logger

	configPath    string
	verbose       bool
	seed          int64
	deterministic bool
	fallback      string
	metricsFile   string
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		newLogger: newProductionLogger,
	}
}

func newProductionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// rootCommand builds the command tree.
func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "jugglefest [input]",
		Short: "Assign jugglers to circuits",
		Long: `jugglefest reads circuits and jugglers, places every juggler in a circuit
by greedy preference-driven displacement and writes one line per circuit to
output.txt.

Jugglers try their preferred circuits in order. A full circuit admits a juggler
whose score beats its lowest member, who then tries their own next preference.
Jugglers out of preferences are placed by the fallback strategy.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runMatch,
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.Flags().Int64Var(&a.seed, "seed", 0, "Seed for the random fallback (0 = wall clock)")
	root.Flags().BoolVar(&a.deterministic, "deterministic", false, "Derive the fallback seed from the input contents")
	root.Flags().StringVar(&a.fallback, "fallback", "", "Fallback strategy: random or round-robin")
	root.Flags().StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")

	root.AddCommand(a.generateCommand())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
