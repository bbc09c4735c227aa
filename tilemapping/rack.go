package tilemapping

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Rack is a multiset of tiles held by a player. Move generation takes
// tiles off it and puts them back in strict push/pop order.
type Rack struct {
	tiles []Tile
}

// NewRack creates a rack holding the given tiles.
func NewRack(tiles ...Tile) *Rack {
	r := &Rack{}
	r.Set(tiles)
	return r
}

// RackFromString creates a Rack from a string like "AEINST?".
func RackFromString(rack string, dist *LetterDistribution) *Rack {
	tiles, err := ToTiles(rack, dist, true)
	if err != nil {
		log.Error().AnErr("err", err).Str("rack", rack).Msg("unable to convert rack")
		return NewRack()
	}
	return NewRack(tiles...)
}

// Set replaces the contents of the rack.
func (r *Rack) Set(tiles []Tile) {
	r.tiles = r.tiles[:0]
	for _, t := range tiles {
		r.tiles = append(r.tiles, t.Unassigned())
	}
}

// Copy returns a deep copy of this rack
func (r *Rack) Copy() *Rack {
	n := &Rack{tiles: make([]Tile, len(r.tiles))}
	copy(n.tiles, r.tiles)
	return n
}

func (r *Rack) CopyFrom(other *Rack) {
	r.tiles = append(r.tiles[:0], other.tiles...)
}

// Has returns true if there is a tile with this letter on the rack. Use
// BlankLetter to ask for a blank.
func (r *Rack) Has(letter rune) bool {
	_, ok := r.Lookup(letter)
	return ok
}

// Lookup returns one tile with the given letter, without removing it.
func (r *Rack) Lookup(letter rune) (Tile, bool) {
	for _, t := range r.tiles {
		if t.Letter == letter {
			return t, true
		}
	}
	return Tile{}, false
}

// Take removes one tile matching t. A blank matches any blank, whatever
// it was assigned.
func (r *Rack) Take(t Tile) error {
	for i := range r.tiles {
		if r.tiles[i].Matches(t) {
			r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrTileNotFound, t)
}

// TakeAll removes every tile in ts. On error the rack is left unchanged.
func (r *Rack) TakeAll(ts []Tile) error {
	backup := r.Copy()
	for _, t := range ts {
		if err := r.Take(t); err != nil {
			r.CopyFrom(backup)
			return err
		}
	}
	return nil
}

// Add puts a tile back on the rack. Blanks lose their assignment.
func (r *Rack) Add(t Tile) {
	r.tiles = append(r.tiles, t.Unassigned())
}

func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

func (r *Rack) Empty() bool {
	return len(r.tiles) == 0
}

// TilesOn returns a sorted copy of the tiles on the rack. Blanks sort last.
func (r *Rack) TilesOn() []Tile {
	ts := make([]Tile, len(r.tiles))
	copy(ts, r.tiles)
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].IsBlank() != ts[j].IsBlank() {
			return !ts[i].IsBlank()
		}
		return ts[i].Letter < ts[j].Letter
	})
	return ts
}

// ScoreOn returns the total value of the tiles on the rack.
func (r *Rack) ScoreOn() int {
	score := 0
	for _, t := range r.tiles {
		score += t.Points
	}
	return score
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return TilesString(r.TilesOn())
}
