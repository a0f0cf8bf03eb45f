package model

import (
	"fmt"
	"strings"
)

const (
	// BoardSize is the width and height of the grid
	BoardSize = 10
	// MaxHeight is the tallest a stack of tiles may grow
	MaxHeight = 5
)

// Coord identifies a cell on the board. It may lie off the grid; validators
// are expected to receive arbitrary coordinates.
type Coord struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// InBounds returns true if the coordinate lies on the grid
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Offset moves the coordinate n cells along the given direction
func (c Coord) Offset(dir Direction, n int) Coord {
	if dir == Vertical {
		return Coord{Row: c.Row + n, Col: c.Col}
	}
	return Coord{Row: c.Row, Col: c.Col + n}
}

// Index returns the position of the coordinate along a line in the given direction
func (c Coord) Index(dir Direction) int {
	if dir == Vertical {
		return c.Row
	}
	return c.Col
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is the axis a play is laid along
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Orthogonal returns the other axis
func (d Direction) Orthogonal() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// IsValid returns true for the two known directions
func (d Direction) IsValid() bool {
	return d == Horizontal || d == Vertical
}

// ParseDirection accepts "horizontal"/"vertical" and their single-letter forms
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal", "across":
		return Horizontal, nil
	case "v", "vertical", "down":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, ErrInvalidDirection
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Cell is a stack of tiles on one square. Only the top letter is visible.
type Cell struct {
	Height int
	Letter rune
}

// IsEmpty returns true if no tile has been placed on the cell
func (c Cell) IsEmpty() bool {
	return c.Height == 0
}

// Board is the 10x10 grid, row-major. It is a value type: assigning or
// passing a Board copies it, so callers can never observe each other's changes.
type Board [BoardSize][BoardSize]Cell

// EmptyBoard returns a board with no tiles
func EmptyBoard() Board {
	var b Board
	for row := range b {
		for col := range b[row] {
			b[row][col] = Cell{Height: 0, Letter: ' '}
		}
	}
	return b
}

// TileAt returns the cell at the given coordinate
func (b Board) TileAt(c Coord) (Cell, error) {
	if !c.InBounds() {
		return Cell{}, fmt.Errorf("%w: %s", ErrOutOfRange, c)
	}
	cell := b[c.Row][c.Col]
	if cell.IsEmpty() {
		cell.Letter = ' '
	}
	return cell, nil
}

// HeightAt returns the stack height at the given coordinate
func (b Board) HeightAt(c Coord) (int, error) {
	cell, err := b.TileAt(c)
	if err != nil {
		return 0, err
	}
	return cell.Height, nil
}

// LetterAt returns the visible letter at the given coordinate, ' ' if empty
func (b Board) LetterAt(c Coord) (rune, error) {
	cell, err := b.TileAt(c)
	if err != nil {
		return 0, err
	}
	return cell.Letter, nil
}

// Occupied returns true if the coordinate is on the grid and holds a tile
func (b Board) Occupied(c Coord) bool {
	return c.InBounds() && !b[c.Row][c.Col].IsEmpty()
}

// IsEmpty returns true if no cell on the board holds a tile
func (b Board) IsEmpty() bool {
	for row := range b {
		for col := range b[row] {
			if !b[row][col].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// TileCount returns the number of occupied cells
func (b Board) TileCount() int {
	count := 0
	for row := range b {
		for col := range b[row] {
			if !b[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// PlaceSingleTile returns a copy of the board with letter stacked at c.
// A blank leaves the board unchanged.
func (b Board) PlaceSingleTile(letter rune, c Coord) (Board, error) {
	if letter == ' ' {
		return b, nil
	}
	if !c.InBounds() {
		return b, fmt.Errorf("%w: %s", ErrOutOfRange, c)
	}
	b.stack(letter, c)
	return b, nil
}

// PlaceTiles returns a copy of the board with every letter of the play
// stacked in place. Heights are not capped here. Blanks never touch the
// board, including blanks that run off the grid.
func (b Board) PlaceTiles(p Play) (Board, error) {
	// b is already a private copy; mutate it in place
	for i, letter := range []rune(p.Tiles) {
		if letter == ' ' {
			continue
		}
		c := p.Start.Offset(p.Direction, i)
		if !c.InBounds() {
			return b, fmt.Errorf("%w: tile %q at %s", ErrOutOfRange, letter, c)
		}
		b.stack(letter, c)
	}
	return b, nil
}

func (b *Board) stack(letter rune, c Coord) {
	cell := &b[c.Row][c.Col]
	cell.Height++
	cell.Letter = letter
}

// LineOfPlay returns the full row (horizontal) or column (vertical) through c
func (b Board) LineOfPlay(c Coord, dir Direction) ([]Cell, error) {
	if !c.InBounds() {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c)
	}
	line := make([]Cell, BoardSize)
	for i := range BoardSize {
		var cell Cell
		if dir == Vertical {
			cell = b[i][c.Col]
		} else {
			cell = b[c.Row][i]
		}
		if cell.IsEmpty() {
			cell.Letter = ' '
		}
		line[i] = cell
	}
	return line, nil
}

// AdjacentCoords returns the on-grid orthogonal neighbours of c
func (b Board) AdjacentCoords(c Coord) []Coord {
	candidates := []Coord{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
	result := make([]Coord, 0, len(candidates))
	for _, n := range candidates {
		if n.InBounds() {
			result = append(result, n)
		}
	}
	return result
}

// AdjacentCells returns the on-grid orthogonal neighbours of c with their contents
func (b Board) AdjacentCells(c Coord) []BoardCell {
	coords := b.AdjacentCoords(c)
	result := make([]BoardCell, 0, len(coords))
	for _, n := range coords {
		result = append(result, b.boardCell(n))
	}
	return result
}

func (b Board) boardCell(c Coord) BoardCell {
	cell := b[c.Row][c.Col]
	letter := cell.Letter
	if cell.IsEmpty() {
		letter = ' '
	}
	return BoardCell{Letter: letter, Coord: c, Height: cell.Height}
}

// MaxStackHeight returns the tallest stack on the board
func (b Board) MaxStackHeight() int {
	highest := 0
	for row := range b {
		for col := range b[row] {
			highest = max(highest, b[row][col].Height)
		}
	}
	return highest
}
