package tilemapping

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLetterDistributionScores(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()

	is.Equal(ld.Score(BlankLetter), 0)
	is.Equal(ld.Score('Y'), 4)
	is.Equal(ld.Score('Z'), 10)
	is.Equal(ld.Score('H'), 4)
	is.Equal(ld.Score('A'), 1)
	is.Equal(ld.NumTotalTiles(), 100)
}

func TestScanLetterDistribution(t *testing.T) {
	is := is.New(t)
	ld, err := ScanLetterDistribution(strings.NewReader("?,1,0\na,3,1\nq,1,10\n"))
	is.NoErr(err)
	is.Equal(ld.NumTotalTiles(), 5)
	is.Equal(ld.Letters(), []rune{'?', 'A', 'Q'})
	is.True(ld.HasLetter('Q'))
	is.True(!ld.HasLetter('Z'))

	_, err = ScanLetterDistribution(strings.NewReader("AB,1,1\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution(strings.NewReader("A,x,1\n"))
	is.True(err != nil)
}
