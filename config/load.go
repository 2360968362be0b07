package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file and merges it over the
// defaults. A missing file is not an error; the defaults are returned.
//
// Parameters:
//   - path: config file path
//
// Returns:
//   - *Config: the resolved configuration
//   - error: an error if the file exists but cannot be read or parsed
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Validate()
	return cfg, nil
}
