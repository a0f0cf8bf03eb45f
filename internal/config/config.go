// Package config loads the rules, dictionary and storage settings shared by
// the upwords commands.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full application configuration
type Config struct {
	Rules      Rules      `yaml:"rules" json:"rules"`
	Game       Game       `yaml:"game" json:"game"`
	Dictionary Dictionary `yaml:"dictionary" json:"dictionary"`
	Storage    Storage    `yaml:"storage" json:"storage"`
	Log        Log        `yaml:"log" json:"log"`

	// Source is where the configuration was read from
	Source string `yaml:"-" json:"source"`
}

// Rules holds the scoring and validation switches
type Rules struct {
	FullRackBonus    int  `yaml:"full_rack_bonus" json:"full_rack_bonus"`
	RackSize         int  `yaml:"rack_size" json:"rack_size"`
	QuBonus          int  `yaml:"qu_bonus" json:"qu_bonus"`
	RejectPluralOnly bool `yaml:"reject_plural_only" json:"reject_plural_only"`
}

// Game holds table settings for multi-player games
type Game struct {
	MinPlayers int `yaml:"min_players" json:"min_players"`
	MaxPlayers int `yaml:"max_players" json:"max_players"`
	PassRounds int `yaml:"pass_rounds" json:"pass_rounds"`
}

// Dictionary says where words come from and how raw lists are curated
type Dictionary struct {
	Path      string `yaml:"path" json:"path"`
	MinLength int    `yaml:"min_length" json:"min_length"`
	MaxLength int    `yaml:"max_length" json:"max_length"`
	JoinQu    bool   `yaml:"join_qu" json:"join_qu"`
}

// Storage selects and configures the game store
type Storage struct {
	Type       string        `yaml:"type" json:"type"`
	RedisURL   string        `yaml:"redis_url" json:"redis_url"`
	SQLitePath string        `yaml:"sqlite_path" json:"sqlite_path"`
	GameTTL    time.Duration `yaml:"game_ttl" json:"game_ttl"`
}

// Log configures the CLI logger
type Log struct {
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		Rules: Rules{
			FullRackBonus:    20,
			RackSize:         7,
			QuBonus:          0,
			RejectPluralOnly: true,
		},
		Game: Game{
			MinPlayers: 1,
			MaxPlayers: 4,
			PassRounds: 2,
		},
		Dictionary: Dictionary{
			Path:      "data/words.txt",
			MinLength: 2,
			MaxLength: 10,
			JoinQu:    true,
		},
		Storage: Storage{
			Type:       "sqlite",
			RedisURL:   "redis://localhost:6379",
			SQLitePath: "~/.upwords/upwords.db",
			GameTTL:    7 * 24 * time.Hour,
		},
		Log: Log{
			Level: "warn",
		},
		Source: "default",
	}
}

// Validate rejects settings no game could be played with
func (c Config) Validate() error {
	var errs []error
	if c.Rules.RackSize <= 0 {
		errs = append(errs, fmt.Errorf("rules.rack_size must be positive, got %d", c.Rules.RackSize))
	}
	if c.Rules.FullRackBonus < 0 || c.Rules.QuBonus < 0 {
		errs = append(errs, errors.New("rules bonuses must not be negative"))
	}
	if c.Game.MinPlayers < 1 {
		errs = append(errs, fmt.Errorf("game.min_players must be at least 1, got %d", c.Game.MinPlayers))
	}
	if c.Game.MaxPlayers < c.Game.MinPlayers {
		errs = append(errs, fmt.Errorf("game.max_players %d is below min_players %d", c.Game.MaxPlayers, c.Game.MinPlayers))
	}
	if c.Dictionary.MaxLength > 0 && c.Dictionary.MaxLength < c.Dictionary.MinLength {
		errs = append(errs, fmt.Errorf("dictionary.max_length %d is below min_length %d", c.Dictionary.MaxLength, c.Dictionary.MinLength))
	}
	return errors.Join(errs...)
}
