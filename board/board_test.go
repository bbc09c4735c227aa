package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

var center = geometry.Position{Row: 7, Col: 7}

// plainBoard is a 15x15 board with no bonuses except those listed.
func plainBoard(t *testing.T, bonuses map[geometry.Position]BonusSquare) *GameBoard {
	desc := make([]string, 15)
	for r := range desc {
		row := []rune(strings.Repeat(".", 15))
		for p, b := range bonuses {
			if p.Row == r {
				row[p.Col] = rune(b)
			}
		}
		desc[r] = string(row)
	}
	g, err := MakeBoard(desc, center)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func placeMove(t *testing.T, r, c int, dir geometry.Direction, word string) *move.Move {
	tiles, err := tilemapping.ToTiles(word, tilemapping.EnglishLetterDistribution(), false)
	if err != nil {
		t.Fatal(err)
	}
	return move.NewPlaceMove(geometry.Position{Row: r, Col: c}, dir, tiles)
}

func TestLoadBoard(t *testing.T) {
	is := is.New(t)
	desc := "3 4 1 2\n.2.d\n3 . t .\n\n....\n"
	g, err := LoadBoard(strings.NewReader(desc))
	is.NoErr(err)
	rows, cols := g.Dim()
	is.Equal(rows, 3)
	is.Equal(cols, 4)
	is.Equal(g.Start(), geometry.Position{Row: 1, Col: 2})
	is.Equal(g.At(geometry.Position{Row: 0, Col: 1}).LetterMultiplier(), 2)
	is.Equal(g.At(geometry.Position{Row: 0, Col: 3}).WordMultiplier(), 2)
	is.Equal(g.At(geometry.Position{Row: 1, Col: 0}).LetterMultiplier(), 3)
	is.Equal(g.At(geometry.Position{Row: 1, Col: 2}).WordMultiplier(), 3)
	is.Equal(g.At(geometry.Position{Row: 2, Col: 2}).WordMultiplier(), 1)
	is.True(!g.HasTiles())
}

func TestLoadBoardErrors(t *testing.T) {
	for _, desc := range []string{
		"2 2 0 0\n.x\n..\n",
		"2 2 0 0\n..\n.",
		"2 2 5 5\n..\n..\n",
		"two rows\n",
		"0 3 0 0\n",
	} {
		_, err := LoadBoard(strings.NewReader(desc))
		assert.True(t, errors.Is(err, ErrInvalidBoard), "board %q: %v", desc, err)
	}
}

func TestStandardBoard(t *testing.T) {
	is := is.New(t)
	g := StandardBoard()
	rows, cols := g.Dim()
	is.Equal(rows, 15)
	is.Equal(cols, 15)
	is.Equal(g.At(geometry.Position{Row: 0, Col: 0}).WordMultiplier(), 3)
	is.Equal(g.At(center).WordMultiplier(), 2)
	is.Equal(g.At(geometry.Position{Row: 5, Col: 5}).LetterMultiplier(), 3)
}

func TestFirstMoveScore(t *testing.T) {
	is := is.New(t)
	g := plainBoard(t, nil)
	m := placeMove(t, 7, 7, geometry.Across, "CAT")
	res := g.TestPlace(m)
	is.True(res.Valid)
	is.Equal(res.Words, []string{"CAT"})
	is.Equal(res.Points, 5)
	is.Equal(g.MoveIndex(), 0)
	is.True(!g.HasTiles())
}

func TestCrossWordScore(t *testing.T) {
	is := is.New(t)
	s := geometry.Position{Row: 7, Col: 10}
	g := plainBoard(t, map[geometry.Position]BonusSquare{s: Bonus2LS})
	res := g.Place(placeMove(t, 7, 7, geometry.Across, "CAT"))
	is.True(res.Valid)
	ld := tilemapping.EnglishLetterDistribution()
	is.NoErr(g.SetTile(geometry.Position{Row: 6, Col: 10}, ld.Tile('A')))

	res = g.TestPlace(placeMove(t, 7, 10, geometry.Across, "S"))
	is.True(res.Valid)
	// AS: A(1) + S(1x2); CATS: 3+1+1 + S(1x2).
	is.Equal(res.Words, []string{"AS", "CATS"})
	is.Equal(res.Points, 10)
}

func TestWordMultipliers(t *testing.T) {
	is := is.New(t)
	g := plainBoard(t, map[geometry.Position]BonusSquare{
		center:            Bonus2WS,
		{Row: 7, Col: 9}:  Bonus3LS,
		{Row: 8, Col: 9}:  Bonus3WS,
		{Row: 6, Col: 7}:  Bonus2LS,
		{Row: 9, Col: 7}:  Bonus2WS,
		{Row: 10, Col: 7}: Bonus2WS,
	})
	res := g.Place(placeMove(t, 7, 7, geometry.Across, "CAT"))
	is.True(res.Valid)
	// (3 + 1 + 1*3) * 2
	is.Equal(res.Points, 14)

	// TE down column 9. The 3L under T is not counted again; E lands on
	// a 3W.
	res = g.TestPlace(placeMove(t, 8, 9, geometry.Down, "E"))
	is.True(res.Valid)
	is.Equal(res.Words, []string{"TE"})
	is.Equal(res.Points, (1+1)*3)

	// Extend C downward through a 2W and another 2W: C O O L
	res = g.TestPlace(placeMove(t, 8, 7, geometry.Down, "OOL"))
	is.True(res.Valid)
	is.Equal(res.Words, []string{"COOL"})
	is.Equal(res.Points, (3+1+1+1)*4)
}

func TestPlayThroughAndBlank(t *testing.T) {
	is := is.New(t)
	g := plainBoard(t, map[geometry.Position]BonusSquare{
		{Row: 7, Col: 5}: Bonus3LS,
		{Row: 7, Col: 6}: Bonus2WS,
	})
	is.True(g.Place(placeMove(t, 7, 7, geometry.Across, "AT")).Valid)

	// SCATS through AT, with a blank S on the 3L.
	m := placeMove(t, 7, 5, geometry.Across, "?SCS")
	res := g.TestPlace(m)
	is.True(res.Valid)
	is.Equal(res.Words, []string{"SCATS"})
	is.Equal(res.Points, (0+3+1+1+1)*2)

	// The blank still scores zero on a letter bonus.
	g2 := plainBoard(t, map[geometry.Position]BonusSquare{{Row: 7, Col: 8}: Bonus3LS})
	res = g2.TestPlace(placeMove(t, 7, 7, geometry.Across, "Q?I"))
	is.True(res.Valid)
	is.Equal(res.Words, []string{"QI"})
	is.Equal(res.Points, 10)
}

func TestInvalidPlacements(t *testing.T) {
	g := plainBoard(t, nil)
	type tc struct {
		m      *move.Move
		reason string
	}
	res := g.TestPlace(placeMove(t, 0, 0, geometry.Across, "CAT"))
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonFirstMove, res.Err)

	g.Place(placeMove(t, 7, 7, geometry.Across, "CAT"))
	cases := []tc{
		{placeMove(t, 7, 8, geometry.Down, "AT"), ReasonOverlap},
		{placeMove(t, 15, 0, geometry.Down, "AT"), ReasonStartOutOfBounds},
		{placeMove(t, -1, 3, geometry.Down, "AT"), ReasonStartOutOfBounds},
		{placeMove(t, 0, 0, geometry.Across, "CAT"), ReasonNotTouching},
		{placeMove(t, 7, 13, geometry.Across, "XYZ"), ReasonOutOfBounds},
		{placeMove(t, 7, 6, geometry.Across, "SCATTERS"), ReasonOutOfBounds},
		{placeMove(t, 7, 3, geometry.NoDirection, "SCATTERS"), ReasonNoDirection},
	}
	for _, c := range cases {
		res := g.TestPlace(c.m)
		assert.False(t, res.Valid, "%v", c.m)
		assert.Equal(t, c.reason, res.Err, "%v", c.m)
	}
}

func TestPlaceDoesNotChangeResult(t *testing.T) {
	is := is.New(t)
	g := StandardBoard()
	moves := []*move.Move{
		placeMove(t, 7, 5, geometry.Across, "QUIT"),
		placeMove(t, 8, 6, geometry.Down, "NS"),
		placeMove(t, 5, 8, geometry.Down, "EX"),
	}
	for _, m := range moves {
		before := g.Copy()
		expected := g.TestPlace(m)
		is.True(expected.Valid)
		got := g.Place(m)
		is.Equal(got, expected)
		is.Equal(before.TestPlace(m), expected)
	}
	is.Equal(g.MoveIndex(), 3)
	is.Equal(g.TilesPlayed(), 8)
	is.Equal(g.LetterAt(geometry.Position{Row: 9, Col: 6}), 'S')
}

func TestInvalidPlaceLeavesBoardAlone(t *testing.T) {
	is := is.New(t)
	g := plainBoard(t, nil)
	res := g.Place(placeMove(t, 0, 0, geometry.Across, "CAT"))
	is.True(!res.Valid)
	is.True(!g.HasTiles())
	is.Equal(g.MoveIndex(), 0)

	res = g.Place(move.NewPassMove())
	is.True(res.Valid)
	is.Equal(g.MoveIndex(), 1)
	// Still the first placement, even though a turn went by.
	is.True(g.Place(placeMove(t, 7, 6, geometry.Across, "CAT")).Valid)
	is.Equal(g.MoveIndex(), 2)
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	g := plainBoard(t, nil)
	g.Place(placeMove(t, 7, 7, geometry.Across, "C?AT"))
	txt := g.ToDisplayText()
	is.True(strings.Contains(txt, "C  a  T"))
	is.Equal(len(strings.Split(strings.TrimSpace(txt), "\n")), 16)
}
