// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Stroop StroopConfig `toml:"stroop"`
	NBack  NBackConfig  `toml:"nback"`
}

// StroopConfig maps Stroop session settings.
type StroopConfig struct {
	Duration        *int `toml:"duration"`
	StartDifficulty *int `toml:"start-difficulty"`
}

// NBackConfig maps 1-back session settings.
type NBackConfig struct {
	EndIndex        *int `toml:"end-index"`
	StartDifficulty *int `toml:"start-difficulty"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
