package board

import (
	"fmt"
	"unicode"

	"github.com/domino14/lexigrid/tilemapping"
)

// A BonusSquare is the board file character for a square.
type BonusSquare rune

const (
	BonusNone BonusSquare = '.'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '2'
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '3'
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = 'd'
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = 't'
)

// multipliers returns the letter and word multiplier for a bonus marking.
func (b BonusSquare) multipliers() (int, int, bool) {
	switch b {
	case BonusNone:
		return 1, 1, true
	case Bonus2LS:
		return 2, 1, true
	case Bonus3LS:
		return 3, 1, true
	case Bonus2WS:
		return 1, 2, true
	case Bonus3WS:
		return 1, 3, true
	}
	return 0, 0, false
}

// A Square is a single square in a game board. Its multipliers are fixed
// when the board is loaded. Once a tile is set it stays for the rest of
// the game.
type Square struct {
	letterMult int
	wordMult   int
	bonus      BonusSquare
	tile       tilemapping.Tile
	occupied   bool
}

func newSquare(b BonusSquare) (Square, error) {
	lm, wm, ok := b.multipliers()
	if !ok {
		return Square{}, fmt.Errorf("%w: bad square %q", ErrInvalidBoard, rune(b))
	}
	return Square{letterMult: lm, wordMult: wm, bonus: b}, nil
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v) (%s)>", s.tile, string(s.bonus))
}

func (s *Square) LetterMultiplier() int {
	return s.letterMult
}

func (s *Square) WordMultiplier() int {
	return s.wordMult
}

func (s *Square) HasTile() bool {
	return s.occupied
}

// Tile returns the tile on this square, if any.
func (s *Square) Tile() (tilemapping.Tile, bool) {
	return s.tile, s.occupied
}

// Letter is the letter shown on the square, or 0 if it is empty.
func (s *Square) Letter() rune {
	if !s.occupied {
		return 0
	}
	return s.tile.Display()
}

func (s *Square) setTile(t tilemapping.Tile) {
	s.tile = t
	s.occupied = true
}

// DisplayString shows the letter, or the bonus marking of an empty square.
func (s *Square) DisplayString() string {
	if s.occupied {
		if s.tile.IsBlank() {
			return string(unicode.ToLower(s.tile.Display()))
		}
		return string(s.tile.Letter)
	}
	return string(s.bonus)
}
