package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	jugglefest "github.com/amitger07/yodle-juggle-fest"
	"github.com/amitger07/yodle-juggle-fest/internal/hash"
	"github.com/amitger07/yodle-juggle-fest/internal/logging"
	"github.com/amitger07/yodle-juggle-fest/internal/metrics"
	"github.com/amitger07/yodle-juggle-fest/source"
)

const metricsNamespace = "jugglefest"

// runMatch is the root command: load, match, write output.txt and the summary.
func (a *app) runMatch(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintf(a.stderr, "Usage: %s\n", cmd.UseLine())
		return nil
	}

	cfg, err := loadCLIConfig(a.configPath)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, &cfg)

	input := cfg.Input
	summary := true
	if len(args) == 1 {
		input = args[0]
		summary = filepath.Base(input) == cfg.SummaryFile
	}

	if a.deterministic {
		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		cfg.Matcher.Seed = hash.SeedFromBytes(data)
	}

	opts := []jugglefest.Option{
		jugglefest.WithConfig(cfg.Matcher),
		jugglefest.WithLogger(logging.NewZap(a.logger)),
	}

	var registry *prometheus.Registry
	if cfg.MetricsFile != "" {
		registry = prometheus.NewRegistry()
		opts = append(opts, jugglefest.WithMetrics(metrics.NewPrometheus(registry, metricsNamespace)))
	}

	a.logger.Debug("starting match",
		zap.String("input", input),
		zap.String("output", cfg.Output),
		zap.Int64("seed", cfg.Matcher.Seed),
		zap.String("fallback", cfg.Matcher.Fallback),
	)

	m, runErr := jugglefest.Run(cmd.Context(), source.NewFile(input), opts...)

	// Metrics are written for failed runs too.
	if registry != nil {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
			a.logger.Warn("failed to write metrics", zap.String("path", cfg.MetricsFile), zap.Error(err))
		}
	}

	if runErr != nil {
		return runErr
	}

	if err := writeAssignment(cfg.Output, m); err != nil {
		return err
	}

	a.logger.Info("assignment written",
		zap.String("output", cfg.Output),
		zap.String("fingerprint", fmt.Sprintf("%016x", m.Fingerprint())),
		zap.Int("passes", m.Stats().Passes),
	)

	if summary {
		return a.printSummary(m, cfg.SummaryCircuit)
	}

	return nil
}

// applyFlags lets explicitly set flags override the config file.
func (a *app) applyFlags(cmd *cobra.Command, cfg *cliConfig) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Matcher.Seed = a.seed
	}
	if flags.Changed("fallback") {
		cfg.Matcher.Fallback = a.fallback
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
}

func writeAssignment(path string, m *jugglefest.Matcher) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if _, err := m.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	return nil
}

// printSummary prints the ID sum of one circuit. output.txt is already
// written when it fails.
func (a *app) printSummary(m *jugglefest.Matcher, circuitID int) error {
	sum, err := m.SumOfJugglerIDs(circuitID)
	if err != nil {
		a.logger.Error("summary circuit not in population", zap.Int("circuit", circuitID), zap.Error(err))
		return fmt.Errorf("failed to print summary: %w", err)
	}

	fmt.Fprintf(a.stdout, "The sum of the IDs of the jugglers assigned to circuit %d is %d\n", circuitID, sum)

	return nil
}
