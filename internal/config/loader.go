package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in the
// command layer.
type Config struct {
	Addr              string `json:"addr" yaml:"addr" toml:"addr"`
	FleetFile         string `json:"fleet_file" yaml:"fleet_file" toml:"fleet_file"`
	MachineCount      int    `json:"machine_count" yaml:"machine_count" toml:"machine_count"`
	InitialStock      int    `json:"initial_stock" yaml:"initial_stock" toml:"initial_stock"`
	LowStockThreshold int    `json:"low_stock_threshold" yaml:"low_stock_threshold" toml:"low_stock_threshold"`
	RefillMax         int    `json:"refill_max" yaml:"refill_max" toml:"refill_max"`
	MaxCascadeDepth   int    `json:"max_cascade_depth" yaml:"max_cascade_depth" toml:"max_cascade_depth"`
	SimEvents         int    `json:"sim_events" yaml:"sim_events" toml:"sim_events"`
	Seed              int64  `json:"seed" yaml:"seed" toml:"seed"`
	LogLevel          string `json:"log_level" yaml:"log_level" toml:"log_level"`

	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	CORSAllowedMethods []string `json:"cors_allowed_methods" yaml:"cors_allowed_methods" toml:"cors_allowed_methods"`
	CORSAllowedHeaders []string `json:"cors_allowed_headers" yaml:"cors_allowed_headers" toml:"cors_allowed_headers"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
