package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestToTiles(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()

	tiles, err := ToTiles("ca?t", ld, false)
	is.NoErr(err)
	is.Equal(len(tiles), 3)
	is.Equal(tiles[0], Tile{Letter: 'C', Points: 3})
	is.Equal(tiles[2], Tile{Letter: BlankLetter, Points: 0, Assigned: 'T'})
	is.Equal(DisplayString(tiles), "CAT")
	is.Equal(TilesString(tiles), "CA?T")
}

func TestToTilesErrors(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()

	_, err := ToTiles("CA?", ld, false)
	is.True(err != nil)
	_, err = ToTiles("C4T", ld, false)
	is.True(err != nil)

	tiles, err := ToTiles("CA?", ld, true)
	is.NoErr(err)
	is.Equal(tiles[2].String(), "?")
}
