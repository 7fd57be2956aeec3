package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"sar2tools/internal/config"
	"sar2tools/internal/crowd"
	"sar2tools/internal/logging"
	"sar2tools/internal/scenery"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the stock crowd")
	maxPeople := flag.Int("max-people", -1, "Override the maximum number of people")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	flag.Parse()

	cfg := config.DefaultCrowd()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadCrowd(*configPath, cfg); err != nil {
			log.Fatalf("Config load failed: %v", err)
		}
	}
	if *maxPeople >= 0 {
		cfg.MaxPeople = *maxPeople
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	ctx := logging.NewContext(context.Background(), logging.New())
	if _, err := crowd.New(cfg, rand.New(rand.NewSource(*seed))).Generate(ctx, scenery.NewTextWriter(nil)); err != nil {
		log.Fatal(err)
	}
}
