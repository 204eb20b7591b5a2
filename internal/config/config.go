// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"asteroid-sim/internal/impact"
)

// Engine selectors.
const (
	EngineLocal  = "local"
	EngineRemote = "remote"
)

// Remote configures the generative engine.
type Remote struct {
	Model       string        `yaml:"model"`
	BaseURL     string        `yaml:"base_url"`
	APIKey      string        `yaml:"-"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float32       `yaml:"temperature"`
}

// History configures where analyses are retained.
type History struct {
	Path  string `yaml:"path"`
	Limit int    `yaml:"limit"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `yaml:"addr"`
}

// Greptime configures the optional time-series sink.
type Greptime struct {
	Endpoint string `yaml:"endpoint"`
	Database string `yaml:"database"`
	Table    string `yaml:"table"`
}

// Config is the root configuration.
type Config struct {
	Engine          string        `yaml:"engine"`
	HitThresholdPct float64       `yaml:"hit_threshold_pct"`
	AllowDegenerate bool          `yaml:"allow_degenerate"`
	PacingDelay     time.Duration `yaml:"pacing_delay"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	Remote          Remote        `yaml:"remote"`
	History         History       `yaml:"history"`
	Server          Server        `yaml:"server"`
	Greptime        Greptime      `yaml:"greptime"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine:          EngineLocal,
		HitThresholdPct: impact.DefaultHitThreshold,
		LogLevel:        "info",
		LogFormat:       "text",
		Remote: Remote{
			Model:   "gpt-4o-mini",
			Timeout: 30 * time.Second,
		},
		History: History{Limit: 50},
		Server:  Server{Addr: ":8080"},
		Greptime: Greptime{
			Database: "public",
			Table:    "impact_analyses",
		},
	}
}

// Load reads the YAML config at configPath, validating it against the CUE
// schema when cueSchemaPath is set. A missing config file yields defaults.
// Environment overrides are applied last.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if cueSchemaPath != "" {
			if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
				return nil, err
			}
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		log.Printf("[Config] %s not found, using defaults", configPath)
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("IMPACT_ENGINE"); v != "" {
		c.Engine = strings.ToLower(v)
	}
	if v := os.Getenv("IMPACT_HIT_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid IMPACT_HIT_THRESHOLD: %w", err)
		}
		c.HitThresholdPct = f
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.Remote.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.Remote.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.Remote.BaseURL = v
	}
	if v := os.Getenv("IMPACT_HISTORY_DB"); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv("GREPTIMEDB_ENDPOINT"); v != "" {
		c.Greptime.Endpoint = v
	}
	if v := os.Getenv("GREPTIMEDB_DATABASE"); v != "" {
		c.Greptime.Database = v
	}
	if v := os.Getenv("GREPTIMEDB_TABLE"); v != "" {
		c.Greptime.Table = v
	}
	return nil
}

// Validate checks semantic ranges the schema cannot see, such as values
// coming from the environment.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineLocal, EngineRemote:
	default:
		return fmt.Errorf("unknown engine %q (want %s or %s)", c.Engine, EngineLocal, EngineRemote)
	}
	if c.HitThresholdPct <= 0 || c.HitThresholdPct > 100 {
		return fmt.Errorf("hit_threshold_pct must be within (0,100], got %v", c.HitThresholdPct)
	}
	if c.PacingDelay < 0 {
		return fmt.Errorf("pacing_delay must not be negative")
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative")
	}
	return nil
}

// ImpactOptions translates the config into engine options.
func (c *Config) ImpactOptions() impact.Options {
	opts := impact.DefaultOptions()
	opts.HitThreshold = c.HitThresholdPct
	opts.AllowDegenerate = c.AllowDegenerate
	return opts
}
