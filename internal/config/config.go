// Package config loads the app configuration by layering defaults, an
// optional YAML file, and environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"PerfectCircle/internal/circle"
)

// Config holds process configuration.
type Config struct {
	// PlayerName is shown next to scores in party mode.
	PlayerName string `koanf:"player_name"`

	// Port is the party-mode listen port on the host.
	Port int `koanf:"port"`

	// Tuning holds every scoring threshold; see circle.DefaultTuning for
	// the reference values.
	Tuning circle.Tuning `koanf:"tuning"`
}

// New returns the defaults. The player name falls back to the hostname.
func New() *Config {
	name, err := os.Hostname()
	if err != nil || name == "" {
		name = "player"
	}
	return &Config{
		PlayerName: name,
		Port:       8898,
		Tuning:     circle.DefaultTuning(),
	}
}

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New)
//  2. YAML file named by PCIRCLE_CONFIG, if set
//  3. environment variables with the PCIRCLE_ prefix, e.g.
//     PCIRCLE_PLAYER_NAME, PCIRCLE_TUNING_MIN_POINTS
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PCIRCLE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// PCIRCLE_TUNING_MIN_POINTS -> tuning.min_points; everything else maps
	// to a flat key with underscores preserved.
	envProvider := env.Provider("PCIRCLE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "PCIRCLE_"))
		if rest, ok := strings.CutPrefix(s, "tuning_"); ok {
			return "tuning." + rest
		}
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.New("port out of range")
	}
	if cfg.PlayerName == "" {
		return nil, errors.New("player_name must not be empty")
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
