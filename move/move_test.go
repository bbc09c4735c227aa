package move

import (
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/tilemapping"
)

type coordTestStruct struct {
	pos    geometry.Position
	dir    geometry.Direction
	output string
}

var coordTests = []coordTestStruct{
	{geometry.Position{Row: 0, Col: 0}, geometry.Across, "1A"},
	{geometry.Position{Row: 0, Col: 0}, geometry.Down, "A1"},
	{geometry.Position{Row: 14, Col: 14}, geometry.Across, "15O"},
	{geometry.Position{Row: 9, Col: 8}, geometry.Down, "I10"},
	{geometry.Position{Row: 1, Col: 7}, geometry.Across, "2H"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.pos, tc.dir)
		if calc != tc.output {
			t.Errorf("For %v %v got %v, expected %v", tc.pos, tc.dir, calc, tc.output)
		}
	}
}

func TestParseMove(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()

	m, err := ParseMove([]string{"place", "-", "8", "8", "ca?t"}, ld)
	is.NoErr(err)
	is.Equal(m.Action(), MoveTypePlace)
	is.Equal(m.Start(), geometry.Position{Row: 7, Col: 7})
	is.Equal(m.Direction(), geometry.Across)
	is.Equal(m.TilesString(), "CA?T")
	is.Equal(m.TilesPlayed(), 3)
	is.Equal(m.ShortDescription(), "8H CA?T")

	m, err = ParseMove([]string{"PLACE", "|", "1", "3", "QI"}, ld)
	is.NoErr(err)
	is.Equal(m.Direction(), geometry.Down)
	is.Equal(m.ShortDescription(), "C1 QI")

	m, err = ParseMove([]string{"EXCHANGE", "q?"}, ld)
	is.NoErr(err)
	is.Equal(m.Action(), MoveTypeExchange)
	is.Equal(m.TilesPlayed(), 2)

	m, err = ParseMove([]string{"pass"}, ld)
	is.NoErr(err)
	is.Equal(m.Action(), MoveTypePass)
	is.Equal(m.TilesPlayed(), 0)
}

func TestParseMoveErrors(t *testing.T) {
	ld := tilemapping.EnglishLetterDistribution()
	for _, fields := range [][]string{
		{},
		{"JUMP"},
		{"PLACE", "/", "1", "1", "AB"},
		{"PLACE", "-", "x", "1", "AB"},
		{"PLACE", "-", "1", "1"},
		{"EXCHANGE"},
	} {
		_, err := ParseMove(fields, ld)
		assert.Error(t, err, "fields %v", fields)
	}
	_, err := ParseMove([]string{"JUMP"}, ld)
	assert.ErrorIs(t, err, ErrUnrecognizedMove)
	_, err = ParseMove([]string{"PLACE", "-", "1", "1", "A?"}, ld)
	assert.Error(t, err)
}

func TestCanonicalOrder(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	at := func(r, c int, dir geometry.Direction, w string, score int) *Move {
		tiles, err := tilemapping.ToTiles(w, ld, false)
		is.NoErr(err)
		m := NewPlaceMove(geometry.Position{Row: r, Col: c}, dir, tiles)
		m.SetScore(score)
		m.SetEquity(float64(score))
		return m
	}
	moves := []*Move{
		at(7, 7, geometry.Down, "CAT", 5),
		at(7, 5, geometry.Across, "CAT", 5),
		at(7, 7, geometry.Across, "ZA", 11),
		at(7, 5, geometry.Across, "ACT", 5),
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Less(moves[j]) })
	is.Equal(moves[0].TilesString(), "ZA")
	is.Equal(moves[1].Key(), "P7.5.0.ACT")
	is.Equal(moves[2].Key(), "P7.5.0.CAT")
	is.Equal(moves[3].Direction(), geometry.Down)
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	tiles, _ := tilemapping.ToTiles("CAT", ld, false)
	m := NewPlaceMove(geometry.Position{Row: 7, Col: 7}, geometry.Across, tiles)
	tiles[0] = ld.Tile('B')
	is.Equal(m.TilesString(), "CAT")
	c := m.Copy()
	c.Tiles()[0] = ld.Tile('M')
	is.Equal(m.TilesString(), "CAT")
	is.Equal(NewPassMove().Key(), "-")
}
