package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Token encodes the cell as "<height><letter-or-space>", e.g. "0 ", "1H", "3S"
func (c Cell) Token() string {
	if c.IsEmpty() {
		return "0 "
	}
	return strconv.Itoa(c.Height) + string(c.Letter)
}

// ParseCell decodes a two-character cell token
func ParseCell(token string) (Cell, error) {
	if utf8.RuneCountInString(token) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	runes := []rune(token)
	if runes[0] < '0' || runes[0] > '9' {
		return Cell{}, fmt.Errorf("%w: %q has no height", ErrInvalidToken, token)
	}
	height := int(runes[0] - '0')
	if height > MaxHeight {
		return Cell{}, fmt.Errorf("%w: %q exceeds height %d", ErrInvalidToken, token, MaxHeight)
	}
	letter := runes[1]
	if height == 0 {
		return Cell{Height: 0, Letter: ' '}, nil
	}
	if letter < 'A' || letter > 'Z' {
		return Cell{}, fmt.Errorf("%w: %q has no letter", ErrInvalidToken, token)
	}
	return Cell{Height: height, Letter: letter}, nil
}

// Tokens encodes the board as a row-major grid of cell tokens
func (b Board) Tokens() [][]string {
	grid := make([][]string, BoardSize)
	for row := range b {
		grid[row] = make([]string, BoardSize)
		for col := range b[row] {
			grid[row][col] = b[row][col].Token()
		}
	}
	return grid
}

// BoardFromTokens decodes a row-major grid of cell tokens
func BoardFromTokens(grid [][]string) (Board, error) {
	b := EmptyBoard()
	if len(grid) != BoardSize {
		return b, fmt.Errorf("%w: got %d rows", ErrInvalidBoardShape, len(grid))
	}
	for row, tokens := range grid {
		if len(tokens) != BoardSize {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoardShape, row, len(tokens))
		}
		for col, token := range tokens {
			cell, err := ParseCell(token)
			if err != nil {
				return b, fmt.Errorf("cell (%d,%d): %w", row, col, err)
			}
			b[row][col] = cell
		}
	}
	return b, nil
}

// MarshalJSON encodes the board in its token grid form
func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Tokens())
}

// UnmarshalJSON decodes a token grid
func (b *Board) UnmarshalJSON(data []byte) error {
	var grid [][]string
	if err := json.Unmarshal(data, &grid); err != nil {
		return err
	}
	decoded, err := BoardFromTokens(grid)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
