package main

import (
	"fmt"

	"asteroid-sim/internal/config"
	"asteroid-sim/internal/impact"
	"asteroid-sim/internal/metrics"
	"asteroid-sim/internal/oracle"
)

// newEngine builds the configured engine. override, when set, replaces
// cfg.Engine. A non-nil collector instruments the result.
func newEngine(cfg *config.Config, override string, collector *metrics.Collector) (impact.Engine, error) {
	kind := cfg.Engine
	if override != "" {
		kind = override
	}

	var eng impact.Engine
	switch kind {
	case config.EngineLocal:
		eng = impact.NewLocalEngine(cfg.ImpactOptions(), cfg.PacingDelay)
	case config.EngineRemote:
		r, err := oracle.New(oracle.Config{
			APIKey:      cfg.Remote.APIKey,
			Model:       cfg.Remote.Model,
			BaseURL:     cfg.Remote.BaseURL,
			Timeout:     cfg.Remote.Timeout,
			Temperature: cfg.Remote.Temperature,
		})
		if err != nil {
			return nil, err
		}
		eng = r
	default:
		return nil, fmt.Errorf("unknown engine %q (want %s or %s)", kind, config.EngineLocal, config.EngineRemote)
	}

	if collector != nil {
		eng = collector.Instrument(eng)
	}
	return eng, nil
}
