package main

import (
	"fmt"
	"os"

	"github.com/mwielgus/wordbook"
	"gopkg.in/yaml.v3"
)

// loadConfig returns the default configuration, overlaid with values from
// the YAML file at path when one is given.
func loadConfig(path string) (wordbook.Config, error) {
	cfg := wordbook.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}
