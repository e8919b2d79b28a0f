// Package config loads optional per-project settings from
// .callscope.yaml at the project root. Flags override config values;
// a missing or malformed file falls back to defaults.
package config

import (
	"github.com/spf13/viper"
)

// Defaults applied when neither config nor flags say otherwise.
const (
	DefaultMaxDepth  = 10
	DefaultStubDepth = 1
)

// Config holds the per-project settings.
type Config struct {
	Language  string `mapstructure:"language"`
	MaxDepth  int    `mapstructure:"max_depth"`
	StubDepth int    `mapstructure:"stub_depth"`
	Overrides string `mapstructure:"overrides"`
}

// Load reads .callscope.yaml from the project directory.
func Load(projectDir string) *Config {
	cfg := &Config{
		MaxDepth:  DefaultMaxDepth,
		StubDepth: DefaultStubDepth,
	}

	v := viper.New()
	v.SetConfigName(".callscope")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectDir)
	v.SetDefault("max_depth", DefaultMaxDepth)
	v.SetDefault("stub_depth", DefaultStubDepth)

	if err := v.ReadInConfig(); err != nil {
		return cfg
	}
	if err := v.Unmarshal(cfg); err != nil {
		return &Config{MaxDepth: DefaultMaxDepth, StubDepth: DefaultStubDepth}
	}

	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.StubDepth < 0 {
		cfg.StubDepth = DefaultStubDepth
	}
	return cfg
}
