package main

import (
	"github.com/spf13/cobra"

	"sar2tools/internal/config"
	"sar2tools/internal/crowd"
	"sar2tools/internal/logging"
)

var (
	crowdFlags     genFlags
	crowdMaxPeople int
)

var crowdCmd = &cobra.Command{
	Use:   "crowd",
	Short: "Generate a crowd of people",
	Long:  "crowd scatters create_human records over a grid until the area or the people cap runs out.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.CrowdPreset(crowdFlags.preset)
		if err != nil {
			return err
		}
		if crowdFlags.configPath != "" {
			if cfg, err = config.LoadCrowd(crowdFlags.configPath, cfg); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("max-people") {
			cfg.MaxPeople = crowdMaxPeople
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		w, cleanup, err := newWriter(crowdFlags.format, crowdFlags.out, crowdFlags.logFile)
		if err != nil {
			return err
		}
		defer cleanup()

		rng, seed := crowdFlags.rng()
		ctx := cmd.Context()
		logging.FromContext(ctx).Info("generating crowd", "preset", crowdFlags.preset, "seed", seed, "max_people", cfg.MaxPeople)
		if _, err := crowd.New(cfg, rng).Generate(ctx, w); err != nil {
			return err
		}
		return cleanup()
	},
}

func init() {
	crowdFlags.register(crowdCmd, "crowd")
	crowdCmd.Flags().IntVar(&crowdMaxPeople, "max-people", 0, "Override the maximum number of people")
}
