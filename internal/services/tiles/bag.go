package tiles

import (
	"github.com/mcoot/upwords-go/internal/dependencies/random"
	"github.com/mcoot/upwords-go/internal/model"
)

// Bag is the face-down supply tiles are drawn from
type Bag struct {
	tiles  Set
	random random.Random
}

// NewBag creates a bag holding the standard distribution
func NewBag(rnd random.Random) *Bag {
	return &Bag{tiles: StandardDistribution(), random: rnd}
}

// BagFromString restores a bag from its remaining letters
func BagFromString(letters string, rnd random.Random) (*Bag, error) {
	set, err := SetFromString(letters)
	if err != nil {
		return nil, err
	}
	return &Bag{tiles: set, random: rnd}, nil
}

// Remaining returns the number of tiles left
func (b *Bag) Remaining() int {
	return b.tiles.Count()
}

// IsEmpty returns true once every tile has been drawn
func (b *Bag) IsEmpty() bool {
	return b.Remaining() == 0
}

// DrawOne removes a random tile from the bag
func (b *Bag) DrawOne() (rune, error) {
	total := b.tiles.Count()
	if total == 0 {
		return 0, model.ErrBagEmpty
	}
	pick := b.random.Intn(total)
	for i, n := range b.tiles {
		if pick < n {
			b.tiles[i]--
			return rune('A' + i), nil
		}
		pick -= n
	}
	// unreachable while Intn honours its bound
	return 0, model.ErrBagEmpty
}

// Draw removes up to n random tiles, fewer if the bag runs out
func (b *Bag) Draw(n int) (string, error) {
	if n > 0 && b.IsEmpty() {
		return "", model.ErrBagEmpty
	}
	drawn := make([]rune, 0, n)
	for range n {
		letter, err := b.DrawOne()
		if err != nil {
			break
		}
		drawn = append(drawn, letter)
	}
	return string(drawn), nil
}

// Return puts tiles back into the bag
func (b *Bag) Return(letters string) error {
	return b.tiles.AddAll(letters)
}

// String lists the remaining tiles alphabetically
func (b *Bag) String() string {
	return b.tiles.String()
}
