// Package ubf reads and writes the board format: a 10x10 grid of
// two-character "<height><letter>" tokens, row then column.
package ubf

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcoot/upwords-go/internal/model"
)

// Format is the interchange form of a board
type Format [][]string

// Empty returns the format of a board with no tiles
func Empty() Format {
	return FromBoard(model.EmptyBoard())
}

// FromBoard encodes a board
func FromBoard(b model.Board) Format {
	return Format(b.Tokens())
}

// ToBoard decodes the format, validating shape and every token
func ToBoard(f Format) (model.Board, error) {
	return model.BoardFromTokens(f)
}

// Parse decodes a JSON encoded board
func Parse(data []byte) (Format, error) {
	var f Format
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	if _, err := ToBoard(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Marshal encodes the format as indented JSON, one row per line
func Marshal(f Format) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, row := range f {
		data, err := json.Marshal(row)
		if err != nil {
			return nil, err
		}
		sb.WriteString("  ")
		sb.Write(data)
		if i < len(f)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]\n")
	return []byte(sb.String()), nil
}

// Copy returns a deep copy of the format
func Copy(f Format) Format {
	out := make(Format, len(f))
	for i, row := range f {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// TileAt returns the token at c
func TileAt(f Format, c model.Coord) (string, error) {
	if !c.InBounds() || c.Row >= len(f) || c.Col >= len(f[c.Row]) {
		return "", fmt.Errorf("%w: %s", model.ErrOutOfRange, c)
	}
	return f[c.Row][c.Col], nil
}

// Line returns the tokens of the row or column running through c
func Line(b model.Board, c model.Coord, dir model.Direction) ([]string, error) {
	cells, err := b.LineOfPlay(c, dir)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(cells))
	for i, cell := range cells {
		tokens[i] = cell.Token()
	}
	return tokens, nil
}

// Equal reports whether two formats describe the same board
func Equal(a, b Format) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
