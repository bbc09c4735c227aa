package board

import (
	"strings"

	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/move"
)

const (
	ReasonStartOutOfBounds = "starting position must be in bounds"
	ReasonOverlap          = "cannot place a tile on top of another"
	ReasonFirstMove        = "first move must start on start spot"
	ReasonOutOfBounds      = "move must be in bounds"
	ReasonNotTouching      = "word must be touching existing word"
	ReasonNoDirection      = "placement needs a direction"
	ReasonNoTiles          = "placement has no tiles"
)

// TestPlace validates and scores a move without changing the board.
//
// Tiles already on the board count their face value only; multipliers
// apply to newly placed tiles. Cross words come first in the result,
// then the main word.
func (g *GameBoard) TestPlace(m *move.Move) move.PlaceResult {
	if m.Action() != move.MoveTypePlace {
		return move.NewValidResult(nil, 0)
	}
	dir := m.Direction()
	if dir != geometry.Across && dir != geometry.Down {
		return move.NewInvalidResult(ReasonNoDirection)
	}
	tiles := m.Tiles()
	if len(tiles) == 0 {
		return move.NewInvalidResult(ReasonNoTiles)
	}
	cross := dir.Other()
	curr := m.Start()

	if !g.IsInBounds(curr) {
		return move.NewInvalidResult(ReasonStartOutOfBounds)
	}
	if g.At(curr).HasTile() {
		return move.NewInvalidResult(ReasonOverlap)
	}

	touching := false
	if !g.HasTiles() {
		// The board is empty, so there is nothing to skip over.
		covers := false
		for n := range tiles {
			if curr.Translate(dir, n) == g.start {
				covers = true
				break
			}
		}
		if !covers {
			return move.NewInvalidResult(ReasonFirstMove)
		}
		touching = true
	}

	var words []string
	var mainWord []rune
	mainPoints, totalPoints := 0, 0
	totalMultiplier := 1

	// Existing prefix.
	back := curr
	for g.HasTile(back.Translate(dir, -1)) {
		back = back.Translate(dir, -1)
		touching = true
	}
	for p := back; p != curr; p = p.Next(dir) {
		t, _ := g.At(p).Tile()
		mainWord = append(mainWord, t.Display())
		mainPoints += t.Points
	}

	for _, tile := range tiles {
		for g.HasTile(curr) {
			t, _ := g.At(curr).Tile()
			mainWord = append(mainWord, t.Display())
			mainPoints += t.Points
			touching = true
			curr = curr.Next(dir)
		}
		if !g.IsInBounds(curr) {
			return move.NewInvalidResult(ReasonOutOfBounds)
		}
		sq := g.At(curr)
		letterPoints := tile.Points * sq.letterMult
		mainWord = append(mainWord, tile.Display())
		mainPoints += letterPoints
		totalMultiplier *= sq.wordMult

		if word, pts, ok := g.crossWord(curr, cross, tile.Display(), letterPoints); ok {
			touching = true
			words = append(words, word)
			totalPoints += pts * sq.wordMult
		}
		curr = curr.Next(dir)
	}

	// Existing suffix.
	for g.HasTile(curr) {
		t, _ := g.At(curr).Tile()
		mainWord = append(mainWord, t.Display())
		mainPoints += t.Points
		touching = true
		curr = curr.Next(dir)
	}

	if !touching {
		return move.NewInvalidResult(ReasonNotTouching)
	}
	if len(mainWord) > 1 {
		words = append(words, string(mainWord))
		totalPoints += mainPoints * totalMultiplier
	}
	return move.NewValidResult(words, totalPoints)
}

// crossWord returns the word formed along dir through p if a letter were
// put there, along with its unmultiplied points. ok is false if no tile
// neighbours p along dir.
func (g *GameBoard) crossWord(p geometry.Position, dir geometry.Direction,
	letter rune, letterPoints int) (string, int, bool) {

	first := p
	for g.HasTile(first.Translate(dir, -1)) {
		first = first.Translate(dir, -1)
	}
	last := p
	for g.HasTile(last.Next(dir)) {
		last = last.Next(dir)
	}
	if first == p && last == p {
		return "", 0, false
	}
	var sb strings.Builder
	points := letterPoints
	for q := first; ; q = q.Next(dir) {
		if q == p {
			sb.WriteRune(letter)
		} else {
			t, _ := g.At(q).Tile()
			sb.WriteRune(t.Display())
			points += t.Points
		}
		if q == last {
			break
		}
	}
	return sb.String(), points, true
}

// Place commits a move. Passes and exchanges only advance the turn. A
// placement is validated first and the board is left alone if it is
// invalid; otherwise the returned result is the one TestPlace gives.
func (g *GameBoard) Place(m *move.Move) move.PlaceResult {
	if m.Action() != move.MoveTypePlace {
		g.moveIndex++
		return move.NewValidResult(nil, 0)
	}
	result := g.TestPlace(m)
	if !result.Valid {
		return result
	}
	curr := m.Start()
	for _, t := range m.Tiles() {
		for g.At(curr).HasTile() {
			curr = curr.Next(m.Direction())
		}
		g.At(curr).setTile(t)
		g.tilesPlayed++
		curr = curr.Next(m.Direction())
	}
	g.moveIndex++
	return result
}
