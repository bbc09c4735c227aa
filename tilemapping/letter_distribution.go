package tilemapping

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

//go:embed english.csv
var englishCSV string

// LetterDistribution encodes the tile distribution for the relevant game:
// how many of each letter are in the bag, and what each is worth.
type LetterDistribution struct {
	Name         string
	letters      []rune
	distribution map[rune]int
	scores       map[rune]int
	numLetters   int
}

// ScanLetterDistribution reads a distribution from csv rows of the form
// letter,quantity,value.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 3
	ld := &LetterDistribution{
		distribution: map[rune]int{},
		scores:       map[rune]int{},
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter := strings.ToUpper(strings.TrimSpace(record[0]))
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("bad letter %q in distribution", record[0])
		}
		n, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, err
		}
		l, _ := utf8.DecodeRuneInString(letter)
		if _, ok := ld.distribution[l]; !ok {
			ld.letters = append(ld.letters, l)
		}
		ld.distribution[l] = n
		ld.scores[l] = p
		ld.numLetters += n
	}
	if len(ld.letters) == 0 {
		return nil, fmt.Errorf("letter distribution is empty")
	}
	return ld, nil
}

// EnglishLetterDistribution returns the built-in English distribution.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution(strings.NewReader(englishCSV))
	if err != nil {
		// The embedded file is part of the build.
		panic(err)
	}
	ld.Name = "english"
	return ld
}

// LoadLetterDistribution loads a distribution file, or the English
// distribution if path is empty.
func LoadLetterDistribution(path string) (*LetterDistribution, error) {
	if path == "" {
		return EnglishLetterDistribution(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open letter distribution: %w", err)
	}
	defer f.Close()
	ld, err := ScanLetterDistribution(f)
	if err != nil {
		return nil, fmt.Errorf("reading %v: %w", path, err)
	}
	ld.Name = path
	log.Debug().Str("path", path).Int("num-tiles", ld.numLetters).Msg("loaded-letter-distribution")
	return ld, nil
}

// HasLetter returns whether the letter (or the blank) is part of this
// distribution.
func (ld *LetterDistribution) HasLetter(l rune) bool {
	_, ok := ld.distribution[l]
	return ok
}

// Score gives the score of the given letter. Unknown letters are worth 0.
func (ld *LetterDistribution) Score(l rune) int {
	return ld.scores[l]
}

// Tile returns a fresh tile for the letter.
func (ld *LetterDistribution) Tile(l rune) Tile {
	return Tile{Letter: l, Points: ld.scores[l]}
}

// Letters returns the letters in the order they were declared.
func (ld *LetterDistribution) Letters() []rune {
	return ld.letters
}

// NumTotalTiles is the number of tiles in a full bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numLetters
}

// MakeBag returns a full, shuffled bag of tiles.
func (ld *LetterDistribution) MakeBag(seed int64) *Bag {
	b := NewBag(ld, seed)
	b.Shuffle()
	return b
}
