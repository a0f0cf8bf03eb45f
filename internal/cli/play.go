package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/ubf"
)

// playArgsUsage documents the trailing arguments of every play command
const playArgsUsage = "<tiles> <row> <col> <h|v>"

// parsePlay reads tiles, row, col and direction. A '.' or '_' in the tiles
// stands for a blank so plays can be typed without quoting.
func parsePlay(args []string) (model.Play, error) {
	if len(args) != 4 {
		return model.Play{}, fmt.Errorf("expected %s", playArgsUsage)
	}

	tiles := strings.NewReplacer(".", " ", "_", " ").Replace(args[0])

	row, err := strconv.Atoi(args[1])
	if err != nil {
		return model.Play{}, fmt.Errorf("invalid row %q", args[1])
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return model.Play{}, fmt.Errorf("invalid col %q", args[2])
	}
	dir, err := model.ParseDirection(args[3])
	if err != nil {
		return model.Play{}, err
	}

	return model.NewPlay(tiles, row, col, dir).Normalized(), nil
}

// requireDictionary loads the word list before a command that validates
func requireDictionary(ctx context.Context) error {
	if app.DictionaryService.IsLoaded() {
		return nil
	}
	if err := app.LoadDictionary(ctx); err != nil {
		return fmt.Errorf("load dictionary: %w (set dictionary.path or run 'upwords words load')", err)
	}
	return nil
}

func readBoard(path string) (model.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Board{}, err
	}
	f, err := ubf.Parse(data)
	if err != nil {
		return model.Board{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return ubf.ToBoard(f)
}

func writeBoard(path string, b model.Board) error {
	data, err := ubf.Marshal(ubf.FromBoard(b))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
