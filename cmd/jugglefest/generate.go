package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amitger07/yodle-juggle-fest/format"
	"github.com/amitger07/yodle-juggle-fest/source"
)

// generateCommand writes a random population in the input format.
func (a *app) generateCommand() *cobra.Command {
	var (
		cfg    source.GeneratorConfig
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random population",
		Long: `Generate writes a reproducible random population in the input format.

The population has circuits*per-circuit jugglers, so every circuit gets
capacity per-circuit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := source.NewGenerator(cfg)
			if err != nil {
				return err
			}

			pop, err := gen.LoadPopulation(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = a.stdout
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := format.WritePopulation(w, pop); err != nil {
				return err
			}

			a.logger.Debug("population generated",
				zap.Int("circuits", len(pop.Circuits)),
				zap.Int("jugglers", len(pop.Jugglers)),
				zap.Uint64("seed", cfg.Seed),
			)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&cfg.Seed, "seed", 1, "Generator seed")
	flags.IntVar(&cfg.Circuits, "circuits", 2000, "Number of circuits")
	flags.IntVar(&cfg.PerCircuit, "per-circuit", 6, "Jugglers per circuit")
	flags.IntVar(&cfg.Preferences, "preferences", 10, "Preferences per juggler")
	flags.Int64Var(&cfg.MaxTrait, "max-trait", source.DefaultMaxTrait, "Largest trait value")
	flags.StringVarP(&output, "output", "o", "-", "Output file (- for stdout)")

	return cmd
}
