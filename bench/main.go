package main

import (
	"fmt"
	"os"

	"bench/internal/attack"
	"bench/internal/config"
	"bench/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var seeded []seed.Link
	if cfg.NeedsSeed() {
		seeded, err = seed.Run(cfg.BaseURL, cfg.SeedCount, cfg.BatchSize, cfg.InsecureSkipVerify, cfg.SeedTimeout)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	codes := make([]string, len(seeded))
	urls := make([]string, len(seeded))
	for i, l := range seeded {
		codes[i] = l.Code
		urls[i] = l.URL
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		Codes:              codes,
		SeededURLs:         urls,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		CreateRatio:        cfg.CreateRatio,
		Type:               cfg.BenchType,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	})
}
