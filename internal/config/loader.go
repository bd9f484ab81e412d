package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MUDRA_CONFIG is set
//  3. env (prefix MUDRA_)
//
// Invalid values are rejected here, at startup, never per-frame.
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MUDRA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: MUDRA_ADDR, MUDRA_COOLDOWN_MS, ...
	// Map env keys like MUDRA_BUFFER_SIZE -> buffer_size (flat keys),
	// preserving underscores to match koanf tags on the struct.
	envProvider := env.Provider("MUDRA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "mudra_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run
// with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.TickIntervalMS <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMS)
	}
	if c.CooldownMS <= 0 {
		return fmt.Errorf("cooldown_ms must be positive, got %d", c.CooldownMS)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be positive, got %d", c.BufferSize)
	}
	if c.Consensus <= 0 {
		return fmt.Errorf("consensus must be positive, got %d", c.Consensus)
	}
	if c.Consensus > c.BufferSize {
		return fmt.Errorf("consensus (%d) must not exceed buffer_size (%d)", c.Consensus, c.BufferSize)
	}
	if c.ThumbExtension <= 0 || c.FingerExtension <= 0 || c.DirectionThreshold <= 0 {
		return fmt.Errorf("extraction thresholds must be positive")
	}
	if c.HighBand <= 0 || c.LowBand <= 0 || c.HighBand >= c.LowBand {
		return fmt.Errorf("position bands must satisfy 0 < high_band (%v) < low_band (%v)", c.HighBand, c.LowBand)
	}
	return nil
}
