package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// BoardCell is one square of a word together with where it sits
type BoardCell struct {
	Letter rune  `json:"letter"`
	Coord  Coord `json:"coord"`
	Height int   `json:"height"`
}

type boardCellJSON struct {
	Letter string `json:"letter"`
	Coord  Coord  `json:"coord"`
	Height int    `json:"height"`
}

// MarshalJSON writes the letter as a one character string
func (c BoardCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardCellJSON{Letter: string(c.Letter), Coord: c.Coord, Height: c.Height})
}

// UnmarshalJSON reads a cell written by MarshalJSON
func (c *BoardCell) UnmarshalJSON(data []byte) error {
	var raw boardCellJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	letter, size := utf8.DecodeRuneInString(raw.Letter)
	if size == 0 || size != len(raw.Letter) {
		return fmt.Errorf("%w: letter %q", ErrInvalidTile, raw.Letter)
	}
	*c = BoardCell{Letter: letter, Coord: raw.Coord, Height: raw.Height}
	return nil
}

// BoardWord is a contiguous run of occupied cells along one axis
type BoardWord []BoardCell

// String returns the visible letters, with a Q tile shown as "Qu"
func (w BoardWord) String() string {
	var sb strings.Builder
	for _, c := range w {
		sb.WriteRune(c.Letter)
		if c.Letter == 'Q' {
			sb.WriteRune('u')
		}
	}
	return sb.String()
}

// DictionaryForm is the lowercase spelling used for dictionary lookups.
// The Q tile is read as the digraph "qu".
func (w BoardWord) DictionaryForm() string {
	var sb strings.Builder
	for _, c := range w {
		if c.Letter == 'Q' {
			sb.WriteString("qu")
			continue
		}
		sb.WriteRune(c.Letter + ('a' - 'A'))
	}
	return sb.String()
}

// Contains returns true if the word runs through c
func (w BoardWord) Contains(c Coord) bool {
	for _, cell := range w {
		if cell.Coord == c {
			return true
		}
	}
	return false
}

// AllHeightOne returns true if every tile in the word is unstacked
func (w BoardWord) AllHeightOne() bool {
	for _, c := range w {
		if c.Height != 1 {
			return false
		}
	}
	return len(w) > 0
}

// HasLetter returns true if any cell shows the given letter
func (w BoardWord) HasLetter(letter rune) bool {
	for _, c := range w {
		if c.Letter == letter {
			return true
		}
	}
	return false
}

// FindWord returns the run of occupied cells through c along dir.
// An empty or off-grid coordinate yields an empty word.
func FindWord(b Board, c Coord, dir Direction) BoardWord {
	if !b.Occupied(c) {
		return nil
	}

	start := c
	for b.Occupied(start.Offset(dir, -1)) {
		start = start.Offset(dir, -1)
	}

	var word BoardWord
	for cur := start; b.Occupied(cur); cur = cur.Offset(dir, 1) {
		word = append(word, b.boardCell(cur))
	}
	return word
}

// WordsFromPlay returns the words formed by a play on the post-play board.
// The main word along the play direction is always first and always present,
// even at length 1; cross words are included only when at least 2 long.
func WordsFromPlay(after Board, p Play) []BoardWord {
	placed := p.PlacedTiles()
	if len(placed) == 0 {
		return nil
	}

	words := []BoardWord{FindWord(after, placed[0].Coord, p.Direction)}

	cross := p.Direction.Orthogonal()
	for _, t := range placed {
		w := FindWord(after, t.Coord, cross)
		if len(w) >= 2 {
			words = append(words, w)
		}
	}
	return words
}
