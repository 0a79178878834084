package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// cliConfig is the optional YAML config file. Flags and environment
// variables take precedence over its values.
type cliConfig struct {
	Token       string `yaml:"token"`
	Project     string `yaml:"project"`
	Environment string `yaml:"environment"`
	APIURL      string `yaml:"api_url"`
	CacheTTL    int    `yaml:"cache_ttl"` // seconds
}

// loadConfig reads path, or $HOME/.keyhaven.yaml when path is empty. A
// missing default file yields an empty config; a missing explicit path is
// an error.
func loadConfig(path string) (cliConfig, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cliConfig{}, nil
		}
		path = filepath.Join(home, ".keyhaven.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cliConfig{}, nil
		}
		return cliConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg cliConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cliConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
