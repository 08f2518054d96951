// ABOUTME: TeamUp configuration management
// ABOUTME: Reads YAML config and TEAMUP_ environment overrides through viper

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultUser is the profile acting as "me" when nothing else is set.
	DefaultUser = "1"
	// DefaultAddr is the HTTP listen address for serve.
	DefaultAddr = ":8080"
	// DefaultLogLevel is used when log_level is unset.
	DefaultLogLevel = "info"

	envPrefix = "TEAMUP"
)

// Config stores TeamUp configuration
type Config struct {
	// CurrentUser is the user id acting as "me".
	CurrentUser string `mapstructure:"user"`
	// DBPath selects the SQLite store when non-empty.
	DBPath   string `mapstructure:"db"`
	Addr     string `mapstructure:"addr"`
	LogLevel string `mapstructure:"log_level"`
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "teamup", "config.yaml")
}

func newViper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("user", DefaultUser)
	v.SetDefault("db", "")
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("log_level", DefaultLogLevel)
	if withEnv {
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	return v
}

// Load reads config from the default path.
func Load() (*Config, error) {
	return LoadFile(GetConfigPath())
}

// LoadFile reads config from path. A missing file yields the defaults with
// environment overrides applied.
func LoadFile(path string) (*Config, error) {
	return read(path, true)
}

// ReadFile reads only what is stored at path, ignoring TEAMUP_ overrides.
func ReadFile(path string) (*Config, error) {
	return read(path, false)
}

func read(path string, withEnv bool) (*Config, error) {
	v := newViper(withEnv)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveFile(GetConfigPath())
}

// SaveFile writes config to path as YAML.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("user", c.CurrentUser)
	v.Set("db", c.DBPath)
	v.Set("addr", c.Addr)
	v.Set("log_level", c.LogLevel)
	return v.WriteConfigAs(path)
}

// SaveCurrentUser stores id as the acting user in the file at path and
// leaves every other stored setting as it was.
func SaveCurrentUser(path, id string) error {
	cfg, err := ReadFile(path)
	if err != nil {
		return err
	}
	cfg.CurrentUser = id
	return cfg.SaveFile(path)
}
