// Package config loads PatchSmith configuration from an optional YAML
// file plus environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// DefaultPath is the config file looked for when none is given.
const DefaultPath = "patchsmith.yaml"

// Load reads configuration in layers: defaults, then the YAML file at
// path (or DefaultPath when path is empty; a missing default file is
// not an error), then environment variables.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if err := loadFile(path, cfg); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// applyEnv overrides file values with environment variables. The
// OLLAMA_* names match what the model runner's own tooling uses.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PATCHSMITH_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("OLLAMA_URL"); v != "" {
		cfg.Ollama.URL = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.Ollama.Model = v
	}
	if v := os.Getenv("PATCHSMITH_TIME_URL"); v != "" {
		cfg.TimeAPI.URL = v
	}
	if v := os.Getenv("PATCHSMITH_TIMEZONE"); v != "" {
		cfg.TimeAPI.Timezone = v
	}
	if v := os.Getenv("PATCHSMITH_TELEMETRY"); v != "" {
		cfg.Telemetry.Path = v
	}
}
