package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

// genFlags are shared by the city and crowd commands.
type genFlags struct {
	configPath string
	preset     string
	seed       int64
	out        string
	logFile    string
	format     string
}

func (f *genFlags) register(cmd *cobra.Command, defaultPreset string) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML file overriding the preset")
	cmd.Flags().StringVar(&f.preset, "preset", defaultPreset, "Built-in preset to start from")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&f.out, "out", "", "Write scenery to this file instead of STDOUT")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Also record placements as JSONL for replay")
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format (text or json)")
}

// rng returns the generator source and the seed it was built from.
func (f *genFlags) rng() (*rand.Rand, int64) {
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
