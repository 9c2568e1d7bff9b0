// Package config loads the application config (YAML) and the player
// settings file (JSON).
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type NATSConfig struct {
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

type Config struct {
	SaveFile     string     `yaml:"save_file"`
	CloudFile    string     `yaml:"cloud_file"`
	SettingsFile string     `yaml:"settings_file"`
	HistoryDir   string     `yaml:"history_dir"`
	LogLevel     string     `yaml:"log_level"`
	NATS         NATSConfig `yaml:"nats"`
}

// Load reads the YAML config at path. A missing file yields the defaults;
// present keys override them.
func Load(path string) (*Config, error) {
	cfg := &Config{
		SaveFile:     "savegame.dat",
		CloudFile:    "cloud_save.dat",
		SettingsFile: "settings.json",
		HistoryDir:   "history",
		LogLevel:     "info",
		NATS:         NATSConfig{SubjectPrefix: "chamber"},
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
