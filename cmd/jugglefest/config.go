package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	jugglefest "github.com/amitger07/yodle-juggle-fest"
)

const (
	defaultInput          = "jugglefest.txt"
	defaultOutput         = "output.txt"
	defaultSummaryCircuit = 1970
)

// cliConfig is the YAML document accepted by --config.
//
// Example:
//
//	input: jugglefest.txt
//	output: output.txt
//	summaryCircuit: 1970
//	metricsFile: jugglefest.prom
//	matcher:
//	  seed: 42
//	  fallback: round-robin
type cliConfig struct {
	// Input is read when no positional argument is given.
	Input string `yaml:"input"`

	// Output receives the assignment.
	Output string `yaml:"output"`

	// SummaryCircuit is the circuit whose member ID sum is printed.
	SummaryCircuit int `yaml:"summaryCircuit"`

	// SummaryFile is the input base name that turns the summary on when an
	// input argument is given.
	SummaryFile string `yaml:"summaryFile"`

	// MetricsFile receives Prometheus text exposition after the run. Empty disables it.
	MetricsFile string `yaml:"metricsFile"`

	// Matcher configures the matching engine.
	Matcher jugglefest.Config `yaml:"matcher"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Input:          defaultInput,
		Output:         defaultOutput,
		SummaryCircuit: defaultSummaryCircuit,
		SummaryFile:    defaultInput,
		Matcher:        jugglefest.DefaultConfig(),
	}
}

// loadCLIConfig reads path over the defaults. An empty path returns the defaults.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	jugglefest.SetDefaults(&cfg.Matcher)
	if cfg.Input == "" {
		cfg.Input = defaultInput
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	if cfg.SummaryFile == "" {
		cfg.SummaryFile = defaultInput
	}

	if err := cfg.Matcher.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
