package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned when the settings file is not found by Load.
var ErrConfigNotFound = errors.New("settings file not found")

// SettingsFileName is the filename for application settings, kept separate
// from the profile document (config.yaml) so hand-editing one never risks
// the other.
const SettingsFileName = "settings.yaml"

// Config represents application settings, as opposed to profile data.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Requests RequestsConfig `mapstructure:"requests"`
	Audit    AuditConfig    `mapstructure:"audit"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RequestsConfig represents generation request settings
type RequestsConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// AuditConfig represents audit log settings
type AuditConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Requests: RequestsConfig{
			Timeout: 60 * time.Second,
		},
		Audit: AuditConfig{
			Enabled: true,
			File:    "",
		},
	}
}

// Load loads application settings from file.
func Load(configFile string) (*Config, error) {
	config := DefaultConfig()

	if configFile == "" {
		configFile = filepath.Join(GetConfigDir(), SettingsFileName)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, ErrConfigNotFound
	}

	// Environment variable overrides
	v.SetEnvPrefix("AIDOCTOOL")
	v.AutomaticEnv()
	_ = v.BindEnv("logging.level", "AIDOCTOOL_LOG_LEVEL")
	_ = v.BindEnv("requests.timeout", "AIDOCTOOL_REQUEST_TIMEOUT")
	_ = v.BindEnv("audit.enabled", "AIDOCTOOL_AUDIT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if config.Audit.File == "" {
		config.Audit.File = filepath.Join(GetConfigDir(), "audit.log")
	}

	return config, nil
}

// Save saves application settings to file.
func (c *Config) Save(configFile string) error {
	if configFile == "" {
		configFile = filepath.Join(GetConfigDir(), SettingsFileName)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)

	v.Set("logging.level", c.Logging.Level)
	v.Set("requests.timeout", c.Requests.Timeout)
	v.Set("audit.enabled", c.Audit.Enabled)
	v.Set("audit.file", c.Audit.File)

	return v.WriteConfig()
}

// LoadOrCreate loads existing settings or writes and returns the defaults.
func LoadOrCreate(configFile string) (*Config, error) {
	cfg, err := Load(configFile)
	if err == nil {
		return cfg, nil
	}

	if errors.Is(err, ErrConfigNotFound) {
		cfg = DefaultConfig()
		cfg.Audit.File = filepath.Join(GetConfigDir(), "audit.log")
		if errSave := cfg.Save(configFile); errSave != nil {
			return nil, fmt.Errorf("failed to save default settings: %w", errSave)
		}
		return cfg, nil
	}

	return nil, err
}

// GetConfigDir returns the configuration directory.
func GetConfigDir() string {
	if configDir := os.Getenv("AIDOCTOOL_CONFIG_DIR"); configDir != "" {
		return configDir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory with absolute path
		cwd, _ := os.Getwd()
		return filepath.Join(cwd, ".aidoctool")
	}

	return filepath.Join(homeDir, ".aidoctool")
}

// EnsureConfigDir ensures the configuration directory exists.
func EnsureConfigDir() error {
	return os.MkdirAll(GetConfigDir(), 0700)
}
