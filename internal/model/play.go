package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Play is a proposed placement. Each character of Tiles is an uppercase
// letter to stack or a space meaning "reuse the tile already there".
type Play struct {
	Tiles     string    `json:"tiles"`
	Start     Coord     `json:"start"`
	Direction Direction `json:"direction"`
}

// NewPlay is shorthand for building a play from its parts
func NewPlay(tiles string, row, col int, dir Direction) Play {
	return Play{Tiles: tiles, Start: Coord{Row: row, Col: col}, Direction: dir}
}

// PlacedTile is a single letter written by a play
type PlacedTile struct {
	Letter rune
	Coord  Coord
}

// Normalized returns the play with its tiles upper-cased
func (p Play) Normalized() Play {
	p.Tiles = strings.ToUpper(p.Tiles)
	return p
}

// Validate checks the play is well formed. Rule violations are not
// reported here; only shapes that no board could accept.
func (p Play) Validate() error {
	if !p.Direction.IsValid() {
		return ErrInvalidDirection
	}
	for i, r := range []rune(p.Tiles) {
		if r != ' ' && (r < 'A' || r > 'Z') {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidTile, r, i)
		}
	}
	if p.LetterCount() == 0 {
		return ErrEmptyPlay
	}
	return nil
}

// Length is the number of characters in the tile string, blanks included
func (p Play) Length() int {
	return utf8.RuneCountInString(p.Tiles)
}

// TrimmedLength is the tile string length without trailing blanks
func (p Play) TrimmedLength() int {
	return utf8.RuneCountInString(strings.TrimRight(p.Tiles, " "))
}

// CoordAt returns the coordinate of the i-th character
func (p Play) CoordAt(i int) Coord {
	return p.Start.Offset(p.Direction, i)
}

// End returns the coordinate one past the last character
func (p Play) End() Coord {
	return p.CoordAt(p.Length())
}

// Before returns the coordinate immediately preceding the start
func (p Play) Before() Coord {
	return p.CoordAt(-1)
}

// Coords returns the coordinate of every character, blanks included
func (p Play) Coords() []Coord {
	coords := make([]Coord, 0, p.Length())
	for i := range p.Length() {
		coords = append(coords, p.CoordAt(i))
	}
	return coords
}

// PlacedTiles returns the letters written by the play with their coordinates
func (p Play) PlacedTiles() []PlacedTile {
	var placed []PlacedTile
	for i, r := range []rune(p.Tiles) {
		if r == ' ' {
			continue
		}
		placed = append(placed, PlacedTile{Letter: r, Coord: p.CoordAt(i)})
	}
	return placed
}

// LetterCount is the number of non-blank characters
func (p Play) LetterCount() int {
	return p.Length() - strings.Count(p.Tiles, " ")
}

// Letters returns the non-blank characters in order
func (p Play) Letters() string {
	return strings.ReplaceAll(p.Tiles, " ", "")
}

func (p Play) String() string {
	return fmt.Sprintf("%q at %s %s", p.Tiles, p.Start, p.Direction)
}
