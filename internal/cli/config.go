package cli

import (
	"os"

	"github.com/mcoot/upwords-go/internal/config"
)

// Config holds CLI configuration
type Config struct {
	ConfigPath string
	Output     string
	Verbose    bool

	// Overrides applied over the loaded settings when set
	Storage    string
	DBPath     string
	Dictionary string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigPath: os.Getenv("UPWORDS_CONFIG"),
		Output:     getEnvOrDefault("UPWORDS_OUTPUT", "text"),
		Verbose:    false,
	}
}

// Settings loads the configuration file, then layers the environment and
// command line flags over it
func (c *Config) Settings() (config.Config, error) {
	settings, err := config.Load(c.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	settings.ApplyEnv(os.Getenv)

	if c.Storage != "" {
		settings.Storage.Type = c.Storage
	}
	if c.DBPath != "" {
		settings.Storage.SQLitePath = c.DBPath
	}
	if c.Dictionary != "" {
		settings.Dictionary.Path = c.Dictionary
	}
	if c.Verbose {
		settings.Log.Level = "debug"
	}

	if err := settings.Validate(); err != nil {
		return config.Config{}, err
	}
	return settings, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
