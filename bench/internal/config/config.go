package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	TypeCreate    = "create"
	TypeDuplicate = "duplicate"
	TypeRedirect  = "redirect"
	TypeMixed     = "mixed"
	TypeSlash     = "slash"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:3000"`
	SeedCount          int           `env:"SEED_COUNT" envDefault:"10000"`
	BatchSize          int           `env:"SEED_BATCH_SIZE" envDefault:"100"`
	Rate               int           `env:"RATE" envDefault:"200"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	CreateRatio        float64       `env:"CREATE_RATIO" envDefault:"0.1"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
	Connections        int           `env:"CONNECTIONS" envDefault:"1000"`
	MaxWorkers         uint64        `env:"MAX_WORKERS" envDefault:"0"`
}

// NeedsSeed reports whether the attack replays codes created beforehand.
func (c *Config) NeedsSeed() bool {
	switch c.BenchType {
	case TypeRedirect, TypeMixed, TypeDuplicate:
		return true
	default:
		return false
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	switch cfg.BenchType {
	case TypeCreate, TypeDuplicate, TypeRedirect, TypeMixed, TypeSlash:
	default:
		return nil, fmt.Errorf("unknown BENCH_TYPE %q", cfg.BenchType)
	}
	return &cfg, nil
}
