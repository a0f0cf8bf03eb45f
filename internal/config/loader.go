package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings
const (
	EnvStorage    = "UPWORDS_STORAGE"
	EnvRedisURL   = "UPWORDS_REDIS_URL"
	EnvDB         = "UPWORDS_DB"
	EnvDictionary = "UPWORDS_DICTIONARY"
	EnvLogLevel   = "UPWORDS_LOG_LEVEL"
)

// Load reads the configuration.
// Search order: customPath -> ~/.upwords/config.yaml -> ./configs/upwords.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "upwords.yaml")); err == nil {
		return cfg, nil
	}

	return Embedded(), nil
}

// Embedded returns the configuration compiled into the binary
func Embedded() Config {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig()
	}
	cfg.Source = "embedded"
	return cfg
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvStorage); v != "" {
		c.Storage.Type = v
	}
	if v := getenv(EnvRedisURL); v != "" {
		c.Storage.RedisURL = v
	}
	if v := getenv(EnvDB); v != "" {
		c.Storage.SQLitePath = v
	}
	if v := getenv(EnvDictionary); v != "" {
		c.Dictionary.Path = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Marshal renders the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".upwords", filename)
}
