package tiles

import (
	"errors"
	"fmt"

	"github.com/mcoot/upwords-go/internal/model"
)

// RackSize is how many tiles a player holds after refilling
const RackSize = 7

// Rack is the tiles in front of a single player
type Rack struct {
	tiles  Set
	target int
}

// NewRack creates an empty rack
func NewRack() *Rack {
	return &Rack{target: RackSize}
}

// RackFromString restores a rack from its letters
func RackFromString(letters string) (*Rack, error) {
	set, err := SetFromString(letters)
	if err != nil {
		return nil, err
	}
	return &Rack{tiles: set, target: RackSize}, nil
}

// WithTarget changes how many tiles the rack refills to
func (r *Rack) WithTarget(n int) *Rack {
	if n > 0 {
		r.target = n
	}
	return r
}

// Target is the number of tiles the rack refills to
func (r *Rack) Target() int {
	return r.target
}

// Count returns the number of tiles held
func (r *Rack) Count() int {
	return r.tiles.Count()
}

// Missing returns how many tiles the rack is short of its target
func (r *Rack) Missing() int {
	return max(0, r.target-r.Count())
}

// Has returns true if the rack holds every letter of the string
func (r *Rack) Has(letters string) bool {
	return r.tiles.Contains(letters)
}

// Take removes the letters from the rack, all or nothing
func (r *Rack) Take(letters string) error {
	if err := r.tiles.RemoveAll(letters); err != nil {
		if errors.Is(err, model.ErrTileNotInSet) {
			return fmt.Errorf("%w: %s", model.ErrTileNotInRack, letters)
		}
		return err
	}
	return nil
}

// Put adds letters to the rack
func (r *Rack) Put(letters string) error {
	return r.tiles.AddAll(letters)
}

// Refill draws from the bag until the rack is full or the bag is empty.
// It returns the letters drawn.
func (r *Rack) Refill(bag *Bag) (string, error) {
	missing := r.Missing()
	if missing == 0 || bag.IsEmpty() {
		return "", nil
	}
	drawn, err := bag.Draw(missing)
	if err != nil {
		return "", err
	}
	if err := r.tiles.AddAll(drawn); err != nil {
		return "", err
	}
	return drawn, nil
}

// String lists the rack's tiles alphabetically
func (r *Rack) String() string {
	return r.tiles.String()
}
