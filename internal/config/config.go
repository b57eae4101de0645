package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog  CatalogConfig
	Log      LogConfig
	Announce AnnounceConfig
	UI       UIConfig
}

// CatalogConfig holds catalog resource locations.
type CatalogConfig struct {
	BuildingsPath string `mapstructure:"buildings_path"`
}

// LogConfig holds paths for the enrollment record log and diagnostics.
type LogConfig struct {
	RecordPath string `mapstructure:"record_path"`
	AppPath    string `mapstructure:"app_path"` // empty means stderr
}

// AnnounceConfig holds the external announce command. Args entries may use
// the {first} and {last} placeholders.
type AnnounceConfig struct {
	Command string
	Args    []string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ClockFormat string `mapstructure:"clock_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix ENROLLKIOSK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("catalog.buildings_path", "buildings.txt")
	v.SetDefault("log.record_path", "user_input.txt")
	v.SetDefault("log.app_path", "")
	v.SetDefault("announce.command", "/usr/bin/say")
	v.SetDefault("announce.args", []string{"{first}", "{last}"})
	v.SetDefault("ui.clock_format", "2006-01-02 15:04:05")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ENROLLKIOSK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "enrollkiosk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ENROLLKIOSK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by provisioning scripts to pin a kiosk's resource paths.
func Save(cfg Config) error {
	path := os.Getenv("ENROLLKIOSK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "enrollkiosk", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.buildings_path", cfg.Catalog.BuildingsPath)
	v.Set("log.record_path", cfg.Log.RecordPath)
	v.Set("log.app_path", cfg.Log.AppPath)
	v.Set("announce.command", cfg.Announce.Command)
	v.Set("announce.args", cfg.Announce.Args)
	v.Set("ui.clock_format", cfg.UI.ClockFormat)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
