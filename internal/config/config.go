package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up relative to the working directory.
const DefaultPath = ".pystats.yaml"

type Config struct {
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	Analysis struct {
		Extension   string `yaml:"extension"`
		FixmeMarker string `yaml:"fixme_marker"`
	} `yaml:"analysis"`
	History struct {
		Record bool   `yaml:"record"`
		Path   string `yaml:"path"`
	} `yaml:"history"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Analysis.Extension = ".py"
	cfg.Analysis.FixmeMarker = "pyre-fixme"
	cfg.History.Path = "pystats.db"
	return cfg
}

// LoadConfig reads the YAML config at path and applies environment
// overrides. A missing file is not an error; the defaults apply.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config over the defaults
	cfg := Default()
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if marker := os.Getenv("PYSTATS_FIXME_MARKER"); marker != "" {
		cfg.Analysis.FixmeMarker = marker
	}
	if db := os.Getenv("PYSTATS_DB"); db != "" {
		cfg.History.Path = db
	}

	// 4. A config file may blank a key explicitly ('extension: ""'), which
	// yaml.Unmarshal writes over the defaults; consumers must never see an
	// empty value, so restore them.
	if cfg.Analysis.Extension == "" {
		cfg.Analysis.Extension = ".py"
	}
	if cfg.Analysis.FixmeMarker == "" {
		cfg.Analysis.FixmeMarker = "pyre-fixme"
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "pystats.db"
	}
	return cfg, nil
}
