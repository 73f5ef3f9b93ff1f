// Package config manages the per-workspace .loom directory: application
// settings in config.json and the theme library under themes/.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DirName is the workspace metadata directory created inside an opened
// folder.
const DirName = ".loom"

// Config is the application settings stored in .loom/config.json.
type Config struct {
	CurrentTheme        string            `json:"current_theme" mapstructure:"current_theme"`
	StatusBarVisible    bool              `json:"status_bar_visible" mapstructure:"status_bar_visible"`
	Keybinds            map[string]string `json:"keybinds" mapstructure:"keybinds"`
	ConfirmFileDelete   bool              `json:"confirm_file_delete" mapstructure:"confirm_file_delete"`
	ConfirmFolderDelete bool              `json:"confirm_folder_delete" mapstructure:"confirm_folder_delete"`
	CustomSettings      map[string]any    `json:"custom_settings" mapstructure:"custom_settings"`
}

// Default returns the settings used before any config.json exists.
func Default() *Config {
	return &Config{
		CurrentTheme:        "dark",
		StatusBarVisible:    true,
		Keybinds:            map[string]string{},
		ConfirmFileDelete:   true,
		ConfirmFolderDelete: true,
		CustomSettings:      map[string]any{},
	}
}

// Dir returns the .loom directory path for an opened workspace folder.
// The folder itself must already exist.
func Dir(folder string) (string, error) {
	if folder == "" {
		return "", fmt.Errorf("no folder path provided")
	}
	info, err := os.Stat(folder)
	if err != nil {
		return "", fmt.Errorf("workspace folder: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("workspace folder: %s is not a directory", folder)
	}
	return filepath.Join(folder, DirName), nil
}

// Init creates the .loom directory structure (themes/built-in, themes/custom,
// plugins), a default config.json, and the built-in theme files. Existing
// files are left alone, so Init is safe to call on every workspace open.
func Init(folder string) error {
	loomDir, err := Dir(folder)
	if err != nil {
		return err
	}

	for _, sub := range []string{
		filepath.Join("themes", "built-in"),
		filepath.Join("themes", "custom"),
		"plugins",
	} {
		if err := os.MkdirAll(filepath.Join(loomDir, sub), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", sub, err)
		}
	}

	configPath := filepath.Join(loomDir, "config.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeJSON(configPath, Default()); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
	}

	return writeBuiltinThemes(filepath.Join(loomDir, "themes", "built-in"))
}

// Load reads .loom/config.json via viper, applying defaults for missing
// fields. A missing config file yields the defaults rather than an error.
func Load(folder string) (*Config, error) {
	loomDir, err := Dir(folder)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(loomDir)

	v.SetDefault("current_theme", "dark")
	v.SetDefault("status_bar_visible", true)
	v.SetDefault("confirm_file_delete", true)
	v.SetDefault("confirm_folder_delete", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Keybinds == nil {
		cfg.Keybinds = map[string]string{}
	}
	if cfg.CustomSettings == nil {
		cfg.CustomSettings = map[string]any{}
	}
	return &cfg, nil
}

// Save writes the config back to .loom/config.json as pretty JSON.
func Save(folder string, cfg *Config) error {
	loomDir, err := Dir(folder)
	if err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(loomDir, "config.json"), cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SetTheme updates the current theme and persists the config.
func SetTheme(folder, themeName string) error {
	cfg, err := Load(folder)
	if err != nil {
		return err
	}
	cfg.CurrentTheme = themeName
	return Save(folder, cfg)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
