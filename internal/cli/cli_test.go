package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/upwords-go/internal/config"
	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/storage/sqlite"
	"github.com/mcoot/upwords-go/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	dir        string
	configPath string
	dbPath     string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("HOME", s.dir)
	s.T().Chdir(s.dir)
	for _, key := range []string{
		"UPWORDS_CONFIG", "UPWORDS_OUTPUT",
		config.EnvStorage, config.EnvRedisURL, config.EnvDB, config.EnvDictionary, config.EnvLogLevel,
	} {
		s.T().Setenv(key, "")
	}

	wordsPath := filepath.Join(s.dir, "words.txt")
	s.Require().NoError(os.WriteFile(wordsPath, []byte(strings.Join(testutil.Words(), "\n")), 0o600))

	s.dbPath = filepath.Join(s.dir, "games.db")
	s.configPath = filepath.Join(s.dir, "upwords.yaml")
	body := "dictionary:\n  path: " + wordsPath + "\nstorage:\n  type: sqlite\n  sqlite_path: " + s.dbPath + "\nlog:\n  level: error\n"
	s.Require().NoError(os.WriteFile(s.configPath, []byte(body), 0o600))
}

func (s *CLISuite) run(args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", s.configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func (s *CLISuite) mustRun(args ...string) string {
	out, err := s.run(args...)
	s.Require().NoError(err, out)
	return out
}

// Board file commands

func (s *CLISuite) TestBoardNewAndShow() {
	path := filepath.Join(s.dir, "board.json")
	s.mustRun("board", "new", path)

	out := s.mustRun("-o", "json", "board", "show", path)
	var view struct {
		Path  string     `json:"path"`
		Board [][]string `json:"board"`
		Tiles int        `json:"tiles"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.Equal(path, view.Path)
	s.Len(view.Board, model.BoardSize)
	s.Equal(0, view.Tiles)
}

func (s *CLISuite) TestBoardNewRefusesOverwrite() {
	path := filepath.Join(s.dir, "board.json")
	s.mustRun("board", "new", path)

	_, err := s.run("board", "new", path)
	s.ErrorContains(err, "already exists")

	s.mustRun("board", "new", "--force", path)
}

func (s *CLISuite) TestBoardPlaySavesLegalPlays() {
	path := filepath.Join(s.dir, "board.json")
	s.mustRun("board", "new", path)

	out := s.mustRun("board", "play", path, "HELLO", "4", "2", "h")
	s.Contains(out, "Legal: 10 points")

	board, err := readBoard(path)
	s.Require().NoError(err)
	s.Equal(5, board.TileCount())

	out = s.mustRun("board", "check", path, "....s", "4", "2", "h")
	s.Contains(out, "Legal: 6 points")
	s.Contains(out, "HELLS (6 pts)")

	unchanged, err := readBoard(path)
	s.Require().NoError(err)
	s.Equal(board, unchanged, "check does not write the board")
}

func (s *CLISuite) TestBoardPlayIllegal() {
	path := filepath.Join(s.dir, "board.json")
	s.mustRun("board", "new", path)

	out := s.mustRun("-o", "json", "board", "play", path, "HELLO", "0", "0", "h")
	var view PlayView
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.False(view.Result.IsValid)
	s.Equal(model.FirstPlayDoesNotCoverCenter, view.Result.Error)

	board, err := readBoard(path)
	s.Require().NoError(err)
	s.True(board.IsEmpty())
}

func (s *CLISuite) TestBoardPlayBadDirection() {
	path := filepath.Join(s.dir, "board.json")
	s.mustRun("board", "new", path)

	_, err := s.run("board", "play", path, "HELLO", "4", "2", "diagonal")
	s.ErrorIs(err, model.ErrInvalidDirection)
}

// Game commands

func (s *CLISuite) newGame() string {
	out := s.mustRun("-o", "json", "game", "new", "alice,bob")
	var view struct {
		Game struct {
			ID string `json:"id"`
		} `json:"game"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.Require().NotEmpty(view.Game.ID)

	// Replace the random deal with known racks
	store, err := sqlite.Open(s.dbPath)
	s.Require().NoError(err)
	defer store.Close()

	ctx := context.Background()
	game, err := store.GetGame(ctx, model.GameID(view.Game.ID))
	s.Require().NoError(err)
	game.Players[0].Rack = "HELLOXY"
	game.Players[1].Rack = "SWORLDX"
	s.Require().NoError(store.SaveGame(ctx, game))

	return view.Game.ID
}

func (s *CLISuite) TestGameFlow() {
	id := s.newGame()

	out := s.mustRun("game", "play", id, "alice", "HELLO", "4", "2", "h")
	s.Contains(out, "Legal: 10 points")

	out = s.mustRun("game", "show", id)
	s.Contains(out, "Turn: bob")
	s.Contains(out, "1. alice: 10 points")

	out = s.mustRun("game", "list")
	s.Contains(out, id)

	out = s.mustRun("game", "pass", id, "bob")
	s.Contains(out, "Passed: bob passed")

	s.Contains(s.mustRun("game", "verify", id), "verified")

	out = s.mustRun("game", "undo", id)
	s.Contains(out, "Undone: bob passed")

	s.mustRun("game", "delete", id)
	_, err := s.run("game", "show", id)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *CLISuite) TestGamePlayOutOfTurn() {
	id := s.newGame()

	_, err := s.run("game", "play", id, "bob", "WORLD", "4", "2", "h")
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *CLISuite) TestGameCheck() {
	id := s.newGame()

	out := s.mustRun("game", "check", id, "alice", "HELLO", "3", "4", "v")
	s.Contains(out, "Legal: 10 points")

	out = s.mustRun("game", "show", id)
	s.Contains(out, "Turn: alice", "check does not take the turn")
}

// Word list commands

func (s *CLISuite) TestWordsPrepare() {
	in := filepath.Join(s.dir, "raw.txt")
	outPath := filepath.Join(s.dir, "clean.txt")
	s.Require().NoError(os.WriteFile(in, []byte("Hello\nqat\nzz\nhello\n"), 0o600))

	out := s.mustRun("words", "prepare", in, "--out", outPath)
	s.Contains(out, "Kept 1 words, removed 3")

	data, err := os.ReadFile(outPath)
	s.Require().NoError(err)
	s.Equal("hello\n", string(data))
}

func (s *CLISuite) TestWordsPrepareToStdout() {
	in := filepath.Join(s.dir, "raw.txt")
	s.Require().NoError(os.WriteFile(in, []byte("queen\nquiz\n"), 0o600))

	out := s.mustRun("words", "prepare", in, "--fold-qu", "--ignore-tiles")
	s.Equal("qeen\nqiz\n", out)
}

func (s *CLISuite) TestWordsLoadAndCheck() {
	other := filepath.Join(s.dir, "other.txt")
	s.Require().NoError(os.WriteFile(other, []byte("zebra\n"), 0o600))

	out := s.mustRun("words", "load", other)
	s.Contains(out, "Loaded 1 words")

	// Later commands read the list cached in storage
	out = s.mustRun("words", "check", "zebra", "hello")
	s.Contains(out, "zebra: ok")
	s.Contains(out, "hello: not a word")
}

// Rules and config

func (s *CLISuite) TestRules() {
	out := s.mustRun("rules")
	s.Contains(out, "1. OutOfBounds")
	s.Contains(out, "OnlyPluralizesWord")
	s.Contains(out, "Full rack bonus: 20 points for using 7 tiles")
}

func (s *CLISuite) TestConfigJSON() {
	out := s.mustRun("-o", "json", "config")
	var settings config.Config
	s.Require().NoError(json.Unmarshal([]byte(out), &settings))
	s.Equal(s.configPath, settings.Source)
	s.Equal("sqlite", settings.Storage.Type)
	s.Equal(s.dbPath, settings.Storage.SQLitePath)
}

func (s *CLISuite) TestStorageFlagOverridesConfig() {
	out := s.mustRun("--storage", "memory", "-o", "json", "config")
	s.Contains(out, `"type": "memory"`)
}

// Helpers

func (s *CLISuite) TestParsePlay() {
	play, err := parsePlay([]string{"..s_", "4", "2", "across"})
	s.Require().NoError(err)
	s.Equal(model.NewPlay("  S ", 4, 2, model.Horizontal), play)

	_, err = parsePlay([]string{"HELLO", "x", "2", "h"})
	s.ErrorContains(err, "invalid row")
}

func (s *CLISuite) TestRenderBoard() {
	out := RenderBoard(testutil.HelloWorldBoard())
	s.Contains(out, "H1")
	s.Contains(out, "O2")
	s.Contains(out, "+")
}
