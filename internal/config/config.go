// Package config provides configuration management for TaskMaster.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the TaskMaster application.
type Config struct {
	Storage       StorageConfig      `mapstructure:"storage"`
	Defaults      DefaultsConfig     `mapstructure:"defaults"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// DefaultsConfig holds the initial view state applied when no flags are
// given.
type DefaultsConfig struct {
	Filter string `mapstructure:"filter"`
	Sort   string `mapstructure:"sort"`
}

// NotificationConfig holds due-date reminder settings.
type NotificationConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	DueWindow Duration `mapstructure:"due_window"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorTitle   string `mapstructure:"color_title"`
	ColorAccent  string `mapstructure:"color_accent"`
	ColorDone    string `mapstructure:"color_done"`
	ColorOverdue string `mapstructure:"color_overdue"`
	ColorHelp    string `mapstructure:"color_help"`
	IconTask     string `mapstructure:"icon_task"`
	IconDone     string `mapstructure:"icon_done"`
	IconStats    string `mapstructure:"icon_stats"`
	IconCategory string `mapstructure:"icon_category"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:   "#6B7280",
		ColorAccent:  "#7C6FE0",
		ColorDone:    "#2ECC71",
		ColorOverdue: "#E74C3C",
		ColorHelp:    "#95A5A6",
		IconTask:     "📋",
		IconDone:     "✅",
		IconStats:    "📊",
		IconCategory: "🏷",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir: "~/.taskmaster",
		},
		Defaults: DefaultsConfig{
			Filter: "all",
			Sort:   "date_desc",
		},
		Notifications: NotificationConfig{
			Enabled:   true,
			DueWindow: Duration(24 * time.Hour),
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.taskmaster" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".taskmaster")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("defaults.filter", cfg.Defaults.Filter)
	viper.Set("defaults.sort", cfg.Defaults.Sort)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.due_window", cfg.Notifications.DueWindow.String())
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_accent", cfg.Theme.ColorAccent)
	viper.Set("theme.color_done", cfg.Theme.ColorDone)
	viper.Set("theme.color_overdue", cfg.Theme.ColorOverdue)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.icon_task", cfg.Theme.IconTask)
	viper.Set("theme.icon_done", cfg.Theme.IconDone)
	viper.Set("theme.icon_stats", cfg.Theme.IconStats)
	viper.Set("theme.icon_category", cfg.Theme.IconCategory)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".taskmaster", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "taskmaster.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("storage.data_dir", "~/.taskmaster")
	viper.SetDefault("defaults.filter", "all")
	viper.SetDefault("defaults.sort", "date_desc")
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.due_window", "24h0m0s")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_accent", defaults.ColorAccent)
	viper.SetDefault("theme.color_done", defaults.ColorDone)
	viper.SetDefault("theme.color_overdue", defaults.ColorOverdue)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.icon_task", defaults.IconTask)
	viper.SetDefault("theme.icon_done", defaults.IconDone)
	viper.SetDefault("theme.icon_stats", defaults.IconStats)
	viper.SetDefault("theme.icon_category", defaults.IconCategory)
}
