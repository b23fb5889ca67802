// Package config loads and validates the service configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dhimarketer/newDirReact-sub000/pkg/layout"
	"github.com/dhimarketer/newDirReact-sub000/pkg/validation"
)

// Config is the full service configuration, loaded from YAML with
// defaults applied for anything left unset.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
	Layout LayoutConfig `yaml:"layout"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CacheConfig configures the registry cache.
type CacheConfig struct {
	Capacity int `yaml:"capacity"`
}

// LayoutConfig overrides the chart geometry constants.
type LayoutConfig struct {
	NodeWidth   float64 `yaml:"node_width"`
	NodeHeight  float64 `yaml:"node_height"`
	SpouseGap   float64 `yaml:"spouse_gap"`
	SiblingGap  float64 `yaml:"sibling_gap"`
	BandGap     float64 `yaml:"band_gap"`
	RowCapacity int     `yaml:"row_capacity"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 15 * time.Second,
		},
		Cache: CacheConfig{
			Capacity: 256,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file and applies defaults for unset fields.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Cache.Capacity == 0 {
		c.Cache.Capacity = d.Cache.Capacity
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// Validate checks the configuration, reporting every problem at once.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("Config").
		MinInt("Server.Port", c.Server.Port, 1).
		MaxInt("Server.Port", c.Server.Port, 65535).
		MinDuration("Server.ShutdownTimeout", c.Server.ShutdownTimeout, time.Second).
		MinInt("Cache.Capacity", c.Cache.Capacity, 1).
		OneOf("Log.Level", c.Log.Level, "debug", "info", "warn", "error").
		Err()
}

// LayoutEngineConfig converts the YAML overrides into an engine config;
// zero values keep the engine defaults.
func (c *Config) LayoutEngineConfig() layout.Config {
	return layout.Config{
		NodeWidth:   c.Layout.NodeWidth,
		NodeHeight:  c.Layout.NodeHeight,
		SpouseGap:   c.Layout.SpouseGap,
		SiblingGap:  c.Layout.SiblingGap,
		BandGap:     c.Layout.BandGap,
		RowCapacity: c.Layout.RowCapacity,
	}
}
