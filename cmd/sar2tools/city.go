package main

import (
	"github.com/spf13/cobra"

	"sar2tools/internal/city"
	"sar2tools/internal/config"
	"sar2tools/internal/logging"
)

var cityFlags genFlags

var cityCmd = &cobra.Command{
	Use:   "city",
	Short: "Generate a city of premodeled buildings",
	Long:  "city sweeps the outskirts, city and center zones and prints create_premodeled records.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.CityPreset(cityFlags.preset)
		if err != nil {
			return err
		}
		if cityFlags.configPath != "" {
			if cfg, err = config.LoadCity(cityFlags.configPath, cfg); err != nil {
				return err
			}
		} else if err := cfg.Validate(); err != nil {
			return err
		}

		w, cleanup, err := newWriter(cityFlags.format, cityFlags.out, cityFlags.logFile)
		if err != nil {
			return err
		}
		defer cleanup()

		rng, seed := cityFlags.rng()
		ctx := cmd.Context()
		logging.FromContext(ctx).Info("generating city", "preset", cityFlags.preset, "seed", seed)
		if _, err := city.New(cfg, rng).Generate(ctx, w); err != nil {
			return err
		}
		return cleanup()
	},
}

func init() {
	cityFlags.register(cityCmd, "default")
}
