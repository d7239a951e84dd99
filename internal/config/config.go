package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName  = "nbdiff"
	configFileName = "config.json"
)

const (
	MinSplitRatio = 0.2
	MaxSplitRatio = 0.8
)

type AppConfig struct {
	ExtractorCommand []string `json:"extractor_command"`
	Theme            string   `json:"theme"`
	SyncScroll       bool     `json:"sync_scroll"`
	SplitRatio       float64  `json:"split_ratio"`
	ShowLineNumbers  bool     `json:"show_line_numbers"`
}

func Default() AppConfig {
	return AppConfig{
		ExtractorCommand: []string{"extract-inputs"},
		Theme:            "monokai",
		SyncScroll:       true,
		SplitRatio:       0.5,
		ShowLineNumbers:  true,
	}
}

func Load() (AppConfig, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return AppConfig{}, "", err
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

func LoadFromPath(path string) (AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return AppConfig{}, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) validate() error {
	if len(c.ExtractorCommand) == 0 || strings.TrimSpace(c.ExtractorCommand[0]) == "" {
		return fmt.Errorf("extractor_command must name a command to run")
	}
	if c.SplitRatio < MinSplitRatio || c.SplitRatio > MaxSplitRatio {
		return fmt.Errorf("split_ratio %.2f out of range [%.1f, %.1f]", c.SplitRatio, MinSplitRatio, MaxSplitRatio)
	}
	if strings.TrimSpace(c.Theme) == "" {
		return fmt.Errorf("theme cannot be empty")
	}
	return nil
}

func DefaultPath() (string, error) {
	home, err := configHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func configHome() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
