package config

import (
	"encoding/json"
	"errors"
	"os"
)

const (
	MinAutoSaveInterval = 60
	MaxAutoSaveInterval = 3600
)

// Settings is the small player-facing settings file. Unlike the save blob it
// is plain JSON: nothing here is worth tamper-protecting.
type Settings struct {
	TypewriterEnabled bool `json:"typewriter_enabled"`
	AutoSaveEnabled   bool `json:"auto_save_enabled"`
	AutoSaveInterval  int  `json:"auto_save_interval"`
	CloudSyncEnabled  bool `json:"cloud_sync_enabled"`
}

func DefaultSettings() Settings {
	return Settings{
		TypewriterEnabled: true,
		AutoSaveEnabled:   true,
		AutoSaveInterval:  MinAutoSaveInterval,
		CloudSyncEnabled:  false,
	}
}

// LoadSettings reads the settings file, default-filling missing keys and
// clamping the auto-save interval into its allowed band. A missing or
// unreadable file falls back to defaults without error: settings are never
// worth aborting a game over.
func LoadSettings(path string) Settings {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings()
	}

	if s.AutoSaveInterval < MinAutoSaveInterval {
		s.AutoSaveInterval = MinAutoSaveInterval
	}
	if s.AutoSaveInterval > MaxAutoSaveInterval {
		s.AutoSaveInterval = MaxAutoSaveInterval
	}
	return s
}

// SaveSettings writes the settings file.
func SaveSettings(path string, s Settings) error {
	if path == "" {
		return errors.New("settings path is empty")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
