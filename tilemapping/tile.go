package tilemapping

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// BlankLetter is the sentinel letter carried by every blank tile.
const BlankLetter = '?'

var (
	ErrTileNotFound  = errors.New("tile not found")
	ErrUnknownLetter = errors.New("letter is not in the distribution")
)

// A Tile is a single lettered piece. Only blanks have an Assigned letter,
// and it is chosen when the blank is played.
type Tile struct {
	Letter   rune
	Points   int
	Assigned rune
}

func (t Tile) IsBlank() bool {
	return t.Letter == BlankLetter
}

// Display returns the letter the tile shows on the board. For a blank this
// is always its assigned letter.
func (t Tile) Display() rune {
	if t.IsBlank() {
		return t.Assigned
	}
	return t.Letter
}

// Matches is true if both tiles are the same kind of tile, regardless of
// what a blank was assigned.
func (t Tile) Matches(o Tile) bool {
	return t.Letter == o.Letter && t.Points == o.Points
}

// Unassigned returns the tile as it sits on a rack.
func (t Tile) Unassigned() Tile {
	t.Assigned = 0
	return t
}

func (t Tile) String() string {
	if t.IsBlank() {
		if t.Assigned == 0 {
			return string(BlankLetter)
		}
		return string([]rune{BlankLetter, t.Assigned})
	}
	return string(t.Letter)
}

// TilesString renders tiles in their wire form; a blank is the sentinel
// followed by its assigned letter.
func TilesString(tiles []Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// DisplayString renders the letters the tiles would show on the board.
func DisplayString(tiles []Tile) string {
	rs := make([]rune, len(tiles))
	for i, t := range tiles {
		rs[i] = t.Display()
	}
	return string(rs)
}

// ToTiles parses the wire form of a tile sequence. A blank must be
// followed by the letter it is assigned, unless allowUnassigned is set
// (racks and exchanges contain bare blanks).
func ToTiles(s string, dist *LetterDistribution, allowUnassigned bool) ([]Tile, error) {
	rs := []rune(strings.ToUpper(s))
	tiles := make([]Tile, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == BlankLetter {
			t := dist.Tile(BlankLetter)
			if i+1 < len(rs) && unicode.IsLetter(rs[i+1]) && !allowUnassigned {
				t.Assigned = rs[i+1]
				i++
			} else if !allowUnassigned {
				return nil, fmt.Errorf("blank at position %d has no assigned letter", i+1)
			}
			tiles = append(tiles, t)
			continue
		}
		if !dist.HasLetter(r) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLetter, r)
		}
		tiles = append(tiles, dist.Tile(r))
	}
	return tiles, nil
}
