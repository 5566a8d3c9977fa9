// Package config loads shirtsearch settings from an optional YAML file,
// SHIRTSEARCH_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, with dots in
// keys replaced by underscores (SHIRTSEARCH_LOG_LEVEL).
const EnvPrefix = "SHIRTSEARCH"

// Settings is the typed view of the configuration used by the CLI.
type Settings struct {
	Catalog struct {
		Path string
	}
	Log struct {
		Level  string
		Format string
	}
	Output struct {
		Format string
	}
	Bench struct {
		Workers int
		Queries int
	}
}

// ViperConfig adapts a *viper.Viper to the accessors used across the
// codebase.
type ViperConfig struct {
	v *viper.Viper
}

// New wraps v. A nil v behaves as an empty configuration.
func New(v *viper.Viper) *ViperConfig {
	if v == nil {
		v = viper.New()
	}
	return &ViperConfig{v: v}
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", "table")
	v.SetDefault("bench.workers", 4)
	v.SetDefault("bench.queries", 1000)
}

// Load builds a configuration from defaults, environment and, when path
// is non-empty, the YAML file at path.
func Load(path string) (*ViperConfig, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return New(v), nil
}

// Settings reads the configuration into a Settings value and checks the
// enumerated fields.
func (c *ViperConfig) Settings() (Settings, error) {
	var s Settings
	s.Catalog.Path = c.GetString("catalog.path")
	s.Log.Level = c.GetString("log.level")
	s.Log.Format = c.GetString("log.format")
	s.Output.Format = c.GetString("output.format")
	s.Bench.Workers = c.GetInt("bench.workers")
	s.Bench.Queries = c.GetInt("bench.queries")

	switch s.Output.Format {
	case "table", "json":
	default:
		return Settings{}, fmt.Errorf("config: output.format must be table or json, got %q", s.Output.Format)
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		return Settings{}, fmt.Errorf("config: log.format must be console or json, got %q", s.Log.Format)
	}
	if s.Bench.Workers < 1 || s.Bench.Queries < 0 {
		return Settings{}, errors.New("config: bench.workers must be positive and bench.queries non-negative")
	}
	return s, nil
}

// GetString returns the value for key as a string.
func (c *ViperConfig) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the value for key as an int.
func (c *ViperConfig) GetInt(key string) int { return c.v.GetInt(key) }
