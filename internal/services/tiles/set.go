package tiles

import (
	"fmt"
	"strings"

	"github.com/mcoot/upwords-go/internal/model"
)

// Set counts tiles per letter A-Z
type Set [26]int

// standardCounts is the 100-tile distribution of a boxed game
var standardCounts = map[rune]int{
	'A': 7, 'B': 3, 'C': 4, 'D': 5, 'E': 8, 'F': 3, 'G': 3, 'H': 3, 'I': 7,
	'J': 1, 'K': 2, 'L': 5, 'M': 5, 'N': 5, 'O': 7, 'P': 3, 'Q': 1, 'R': 5,
	'S': 6, 'T': 5, 'U': 5, 'V': 1, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1,
}

// StandardDistribution returns the full starting bag
func StandardDistribution() Set {
	var s Set
	for letter, n := range standardCounts {
		s[letter-'A'] = n
	}
	return s
}

// SetFromString counts the letters of a string
func SetFromString(letters string) (Set, error) {
	var s Set
	if err := s.AddAll(letters); err != nil {
		return Set{}, err
	}
	return s, nil
}

func index(letter rune) (int, error) {
	if letter < 'A' || letter > 'Z' {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidLetter, letter)
	}
	return int(letter - 'A'), nil
}

// Count returns the total number of tiles
func (s Set) Count() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Get returns how many of a letter the set holds
func (s Set) Get(letter rune) int {
	i, err := index(letter)
	if err != nil {
		return 0
	}
	return s[i]
}

// Add puts n copies of letter into the set
func (s *Set) Add(letter rune, n int) error {
	i, err := index(letter)
	if err != nil {
		return err
	}
	s[i] += n
	return nil
}

// Remove takes n copies of letter out of the set
func (s *Set) Remove(letter rune, n int) error {
	i, err := index(letter)
	if err != nil {
		return err
	}
	if s[i] < n {
		return fmt.Errorf("%w: %q", model.ErrTileNotInSet, letter)
	}
	s[i] -= n
	return nil
}

// AddAll adds one tile per letter of the string
func (s *Set) AddAll(letters string) error {
	next := *s
	for _, r := range letters {
		if err := next.Add(r, 1); err != nil {
			return err
		}
	}
	*s = next
	return nil
}

// RemoveAll removes one tile per letter of the string. Nothing is removed
// unless every letter is present.
func (s *Set) RemoveAll(letters string) error {
	next := *s
	for _, r := range letters {
		if err := next.Remove(r, 1); err != nil {
			return err
		}
	}
	*s = next
	return nil
}

// Contains returns true if every letter of the string can be taken
func (s Set) Contains(letters string) bool {
	return s.RemoveAll(letters) == nil
}

// Map returns the non-zero counts keyed by letter
func (s Set) Map() map[rune]int {
	m := make(map[rune]int)
	for i, n := range s {
		if n > 0 {
			m[rune('A'+i)] = n
		}
	}
	return m
}

// String lists every tile in alphabetical order
func (s Set) String() string {
	var sb strings.Builder
	for i, n := range s {
		sb.WriteString(strings.Repeat(string(rune('A'+i)), n))
	}
	return sb.String()
}
