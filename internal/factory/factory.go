package factory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/upwords-go/internal/config"
	"github.com/mcoot/upwords-go/internal/dependencies/clock"
	"github.com/mcoot/upwords-go/internal/dependencies/random"
	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/services/dictionary"
	"github.com/mcoot/upwords-go/internal/services/game"
	"github.com/mcoot/upwords-go/internal/services/scoring"
	"github.com/mcoot/upwords-go/internal/services/session"
	"github.com/mcoot/upwords-go/internal/services/validation"
	"github.com/mcoot/upwords-go/internal/storage"
	"github.com/mcoot/upwords-go/internal/storage/memory"
	redisstorage "github.com/mcoot/upwords-go/internal/storage/redis"
	"github.com/mcoot/upwords-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	ValidationService *validation.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller

	dictionaryPath string
	logger         *slog.Logger
}

// Rules bundles the configuration of the rules services
type Rules struct {
	Validation validation.Config
	Scoring    scoring.Config
	Game       game.Config
}

// DefaultRules returns the standard rules
func DefaultRules() Rules {
	return Rules{
		Validation: validation.DefaultConfig(),
		Scoring:    scoring.DefaultConfig(),
		Game:       game.DefaultConfig(),
	}
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the dictionary file (optional)
	// If empty, dictionary must be loaded manually or from storage
	DictionaryPath string
	// Rules configures validation, scoring and turn flow (optional)
	// If nil, defaults to DefaultRules()
	Rules *Rules
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
}

// ConfigFromSettings maps loaded settings onto a factory Config
func ConfigFromSettings(settings config.Config, logger *slog.Logger) Config {
	rules := Rules{
		Validation: validation.Config{
			RejectPluralOnly: settings.Rules.RejectPluralOnly,
		},
		Scoring: scoring.Config{
			FullRackBonus: settings.Rules.FullRackBonus,
			RackSize:      settings.Rules.RackSize,
			QuBonus:       settings.Rules.QuBonus,
		},
		Game: game.Config{
			MinPlayers: settings.Game.MinPlayers,
			MaxPlayers: settings.Game.MaxPlayers,
			RackSize:   settings.Rules.RackSize,
			PassRounds: settings.Game.PassRounds,
		},
	}

	cfg := Config{
		DictionaryPath: settings.Dictionary.Path,
		Rules:          &rules,
		Logger:         logger,
		StorageType:    settings.Storage.Type,
		SQLitePath:     settings.Storage.SQLitePath,
	}
	if settings.Storage.Type == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = settings.Storage.RedisURL
		redisCfg.GameTTL = settings.Storage.GameTTL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}

	rules := DefaultRules()
	if cfg.Rules != nil {
		rules = *cfg.Rules
	}

	app := newWithDependencies(store, clock.New(), random.New(), rules, logger)
	app.dictionaryPath = cfg.DictionaryPath
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, rules Rules, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	validationService := validation.New(dictService, rules.Validation)
	scoringService := scoring.New(rules.Scoring)
	gameController := game.NewController(store, dictService, validationService, scoringService, clk, rnd, logger, rules.Game)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		ValidationService: validationService,
		ScoringService:    scoringService,
		GameController:    gameController,
		logger:            logger,
	}
}

// LoadDictionary loads the word list cached in storage, falling back to
// the configured dictionary file
func (a *App) LoadDictionary(ctx context.Context) error {
	err := a.DictionaryService.LoadFromStorage(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrDictionaryNotLoaded) {
		return err
	}
	if a.dictionaryPath == "" {
		return err
	}
	return a.DictionaryService.LoadFromFile(ctx, a.dictionaryPath)
}

// NewSession starts a board session that uses the app's rules
func (a *App) NewSession(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithValidator(a.ValidationService),
		session.WithScorer(a.ScoringService),
		session.WithLogger(a.logger),
	}
	return session.New(a.DictionaryService, append(base, opts...)...)
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
