package project

import (
	"os"
	"path/filepath"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// DefaultConfigDir returns ~/.modulecut, or .modulecut in the working
// directory when the home directory is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".modulecut")
}

// DefaultConfigPath returns the path of config.json in the default directory.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig writes the config as JSON.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads the config at path. A missing file yields
// DefaultAppConfig; settings absent from an older file keep their defaults.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	if _, err := readJSON(path, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentJobs == nil {
		config.RecentJobs = []string{}
	}
	return config, nil
}
