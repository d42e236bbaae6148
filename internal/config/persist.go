package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"vfstree/internal/domain"
)

const (
	configDirName  = "vfstree"
	configFileName = "config.json"
)

func DefaultConfig() Config {
	return Config{
		TreePath: "",
		SortMode: domain.SortByTree,
		Theme:    "dark",
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return cfg, err
	}
	return mergeConfig(cfg, stored), nil
}

func SaveConfig(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.TreePath != nil {
		merged.TreePath = *stored.TreePath
	}
	if stored.SortMode != nil {
		merged.SortMode = domainSortMode(*stored.SortMode, base.SortMode)
	}
	if stored.Theme != nil {
		merged.Theme = *stored.Theme
	}
	return merged
}

func domainSortMode(value string, fallback domain.SortMode) domain.SortMode {
	switch domain.SortMode(value) {
	case domain.SortByTree, domain.SortBySize, domain.SortByName:
		return domain.SortMode(value)
	default:
		return fallback
	}
}
