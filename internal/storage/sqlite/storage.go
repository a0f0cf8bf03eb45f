// Package sqlite provides durable game storage in a single SQLite file.
// Uses the pure-Go modernc.org/sqlite driver so the CLI builds without cgo.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface.
// Games are stored as JSON documents keyed by ID.
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Storage, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("sqlite: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: cannot open database: %w", err)
	}
	// One writer at a time; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: cannot connect to database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migration failed: %w", err)
	}
	return s, nil
}

func (s *Storage) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			data TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_updated ON games(updated_at DESC);

		CREATE TABLE IF NOT EXISTS dictionary_words (
			word TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS dictionary_meta (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			loaded_at INTEGER NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO games (id, state, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   state = excluded.state,
		   data = excluded.data,
		   updated_at = excluded.updated_at`,
		string(game.ID), string(game.State), string(data),
		game.CreatedAt.UnixNano(), game.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: cannot save game %s: %w", game.ID, err)
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM games WHERE id = ?", string(id)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: cannot query game %s: %w", id, err)
	}
	return decodeGame(data)
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM games WHERE id = ?", string(id)); err != nil {
		return fmt.Errorf("sqlite: cannot delete game %s: %w", id, err)
	}
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT data FROM games ORDER BY updated_at DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("sqlite: cannot query games: %w", err)
	}
	defer rows.Close()

	games := []*model.Game{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("sqlite: cannot scan row: %w", err)
		}
		game, err := decodeGame(data)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: row iteration error: %w", err)
	}
	return games, nil
}

func decodeGame(data string) (*model.Game, error) {
	var game model.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return nil, fmt.Errorf("sqlite: corrupt game record: %w", err)
	}
	return &game, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	var loadedAt int64
	err := s.db.QueryRowContext(ctx, "SELECT loaded_at FROM dictionary_meta WHERE id = 1").Scan(&loadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrDictionaryNotLoaded
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: cannot query dictionary: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT word FROM dictionary_words")
	if err != nil {
		return nil, fmt.Errorf("sqlite: cannot query dictionary: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("sqlite: cannot scan row: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM dictionary_words"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO dictionary_words (word) VALUES (?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err = stmt.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("sqlite: cannot save word %q: %w", w, err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO dictionary_meta (id, loaded_at) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET loaded_at = excluded.loaded_at`,
		time.Now().UnixNano(),
	); err != nil {
		return err
	}

	return tx.Commit()
}
