package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"bench/internal/config"
)

type Config struct {
	BaseURL            string
	Codes              []string
	SeededURLs         []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	Type               string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

var errNoSeed = errors.New("attack requires seeded links")

func targeterFor(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case config.TypeCreate:
		return CreateTargeter(cfg.BaseURL), nil
	case config.TypeDuplicate:
		if len(cfg.SeededURLs) == 0 {
			return nil, errNoSeed
		}
		return DuplicateTargeter(cfg.BaseURL, cfg.SeededURLs), nil
	case config.TypeRedirect:
		if len(cfg.Codes) == 0 {
			return nil, errNoSeed
		}
		return RedirectTargeter(cfg.BaseURL, cfg.Codes), nil
	case config.TypeMixed:
		if len(cfg.Codes) == 0 {
			return nil, errNoSeed
		}
		return MixedTargeter(cfg.BaseURL, cfg.Codes, cfg.CreateRatio), nil
	case config.TypeSlash:
		return SlashTargeter(cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config) error {
	targeter, err := targeterFor(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Type, err)
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
