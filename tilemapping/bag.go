package tilemapping

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles!
type Bag struct {
	tiles              []Tile
	initialTiles       []Tile
	letterDistribution *LetterDistribution
	rng                *frand.RNG
}

// NewBag creates a full, unshuffled bag. A non-zero seed makes every
// shuffle and draw reproducible.
func NewBag(ld *LetterDistribution, seed int64) *Bag {
	var rng *frand.RNG
	if seed != 0 {
		seedBytes := make([]byte, 32)
		binary.LittleEndian.PutUint64(seedBytes, uint64(seed))
		rng = frand.NewCustom(seedBytes, 1024, 12)
	} else {
		rng = frand.New()
	}
	tiles := make([]Tile, 0, ld.NumTotalTiles())
	for _, l := range ld.Letters() {
		for i := 0; i < ld.distribution[l]; i++ {
			tiles = append(tiles, ld.Tile(l))
		}
	}
	initial := make([]Tile, len(tiles))
	copy(initial, tiles)
	return &Bag{
		tiles:              tiles,
		initialTiles:       initial,
		letterDistribution: ld,
		rng:                rng,
	}
}

// Shuffle shuffles the bag.
func (b *Bag) Shuffle() {
	b.rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Refill refills the bag.
func (b *Bag) Refill() {
	b.tiles = append(b.tiles[:0], b.initialTiles...)
	b.Shuffle()
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]Tile, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	drawn := make([]Tile, n)
	copy(drawn, b.tiles[len(b.tiles)-n:])
	b.tiles = b.tiles[:len(b.tiles)-n]
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []Tile {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// PutBack returns tiles to the bag and reshuffles it.
func (b *Bag) PutBack(tiles []Tile) {
	for _, t := range tiles {
		b.tiles = append(b.tiles, t.Unassigned())
	}
	b.Shuffle()
}

// RemoveTiles takes the given tiles out of the bag. This is used to set
// a rack directly. If any tile is missing the bag is left unchanged.
func (b *Bag) RemoveTiles(tiles []Tile) error {
	remaining := make([]Tile, len(b.tiles))
	copy(remaining, b.tiles)
	for _, t := range tiles {
		found := false
		for i := range remaining {
			if remaining[i].Matches(t) {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %v not in bag", ErrTileNotFound, t)
		}
	}
	b.tiles = remaining
	return nil
}

// Exchange draws len(tiles) new tiles and then puts the given tiles back.
// The drawn tiles never include the ones being exchanged.
func (b *Bag) Exchange(tiles []Tile) ([]Tile, error) {
	drawn, err := b.Draw(len(tiles))
	if err != nil {
		return nil, err
	}
	b.PutBack(tiles)
	log.Debug().Int("n", len(tiles)).Int("remaining", len(b.tiles)).Msg("exchanged")
	return drawn, nil
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns a copy of the tiles left in the bag.
func (b *Bag) Peek() []Tile {
	ts := make([]Tile, len(b.tiles))
	copy(ts, b.tiles)
	return ts
}

func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.letterDistribution
}
