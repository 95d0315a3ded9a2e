package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wxgate/emwintg/internal/common"
)

// LoadStreamConfig reads a YAML configuration file, fills defaults for any
// tuning fields left unset, and validates the result.
func LoadStreamConfig(path string) (*StreamConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapErrorf(err, "reading config file %s", path)
	}

	var cfg StreamConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, common.WrapErrorf(err, "parsing config file %s", path)
	}

	cfg.ApplyDefaults()

	if err := ValidateStreamConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
