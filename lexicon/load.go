package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var ErrEmptyLexicon = errors.New("lexicon has no words")

const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "iso-8859-1"
)

// Load reads whitespace-separated words until EOF, one insertion per
// word.
func Load(r io.Reader, name string) (*Trie, error) {
	t := NewTrie(name)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		t.AddWord(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if t.NumWords() == 0 {
		return nil, ErrEmptyLexicon
	}
	return t, nil
}

// LoadFile loads a word list from disk. Latin-1 files are decoded to UTF-8
// first. The lexicon is named after the file, minus its extension.
func LoadFile(path, encoding string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open lexicon: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf-8":
	case EncodingLatin1, "latin1":
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("unsupported lexicon encoding %q", encoding)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t, err := Load(r, name)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	log.Info().Str("lexicon", name).Int("words", t.NumWords()).Int("nodes", len(t.nodes)).
		Msg("loaded-lexicon")
	return t, nil
}
