// Package testhelpers builds small boards and lexicons for tests.
package testhelpers

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

//go:embed words.txt
var wordList string

var DefaultConfig = config.DefaultConfig()

// Center is the start square of every board made here.
var Center = geometry.Position{Row: 7, Col: 7}

// SmallLexicon is a trie of a few hundred short English words.
func SmallLexicon() *lexicon.Trie {
	t, err := lexicon.Load(strings.NewReader(wordList), "small")
	if err != nil {
		panic(err)
	}
	return t
}

// LexiconOf builds a trie of just the given words.
func LexiconOf(words ...string) *lexicon.Trie {
	t := lexicon.NewTrie("test")
	for _, w := range words {
		t.AddWord(w)
	}
	return t
}

func English() *tilemapping.LetterDistribution {
	return tilemapping.EnglishLetterDistribution()
}

// PlainBoard is a 15x15 board without bonus squares, starting at Center.
func PlainBoard() *board.GameBoard {
	desc := make([]string, 15)
	for i := range desc {
		desc[i] = strings.Repeat(".", 15)
	}
	b, err := board.MakeBoard(desc, Center)
	if err != nil {
		panic(err)
	}
	return b
}

// PlaceMove makes a placement from the wire form of its tiles.
func PlaceMove(row, col int, dir geometry.Direction, tiles string) *move.Move {
	ts, err := tilemapping.ToTiles(tiles, English(), false)
	if err != nil {
		panic(err)
	}
	return move.NewPlaceMove(geometry.Position{Row: row, Col: col}, dir, ts)
}

// MustPlace commits a placement, panicking if it is invalid.
func MustPlace(b *board.GameBoard, row, col int, dir geometry.Direction, tiles string) move.PlaceResult {
	res := b.Place(PlaceMove(row, col, dir, tiles))
	if !res.Valid {
		panic(res.Err)
	}
	return res
}

func Rack(s string) *tilemapping.Rack {
	return tilemapping.RackFromString(s, English())
}

// WriteWordList writes the words behind SmallLexicon to dir and returns
// the path of the file.
func WriteWordList(dir string) (string, error) {
	path := filepath.Join(dir, "small.txt")
	return path, os.WriteFile(path, []byte(wordList), 0o644)
}
