package makefile

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsDirName = ".epimake"

// SettingsDir returns the workspace-local settings directory.
func SettingsDir(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, settingsDirName)
}

// DefaultSettingsPath returns .epimake/config.yaml within the workspace.
func DefaultSettingsPath(workspace string) string {
	return filepath.Join(SettingsDir(workspace), "config.yaml")
}

// Settings matches .epimake/config.yaml inside the workspace.
type Settings struct {
	Version  string        `yaml:"version" json:"version"`
	BuildDir string        `yaml:"build_dir" json:"build_dir"`
	Color    bool          `yaml:"color" json:"color"`
	Output   string        `yaml:"output" json:"output"`
	History  HistoryConfig `yaml:"history" json:"history"`
}

// HistoryConfig controls the generation log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path" json:"path"`
}

// DefaultSettings pins the stock configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Version:  "1.0.0",
		BuildDir: DefaultBuildDir,
		Color:    true,
		Output:   DefaultOutput,
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(settingsDirName, "history.db"),
		},
	}
}

// LoadSettings loads the settings file or returns defaults when missing.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, err
	}
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = DefaultBuildDir
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}

// SaveSettings writes the settings to disk, creating the directory.
func SaveSettings(path string, cfg *Settings) error {
	if cfg == nil {
		return errors.New("settings missing")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// HistoryPath resolves the history database location, keeping relative
// entries inside the workspace.
func (s *Settings) HistoryPath(workspace string) string {
	path := s.History.Path
	if path == "" {
		path = filepath.Join(settingsDirName, "history.db")
	}
	if filepath.IsAbs(path) {
		return path
	}
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, path)
}
