// Package config defines server configuration and its loading. Values come
// from an optional YAML file with environment-variable overrides; every
// field has a sensible default so the server runs with no config at all.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds all settings for the back-office server.
type Configuration struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig holds HTTP and storage settings.
type ServerConfig struct {
	Port           int      `yaml:"port,omitempty"`
	DatabasePath   string   `yaml:"databasePath,omitempty"`
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // json, console
}

// Default returns the configuration used when no file is supplied.
func Default() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Port:           8080,
			DatabasePath:   "backoffice.db",
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// LoadConfiguration reads the config file at configPath and merges it over
// the defaults. Environment variables override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := Default()

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	if err := viper.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return configuration, nil
}
