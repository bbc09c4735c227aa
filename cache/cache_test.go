package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/tilemapping"
)

func TestLoadOnlyOnce(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return key + "!", nil
	}
	for i := 0; i < 3; i++ {
		obj, err := Load(cfg, "foo", loader)
		is.NoErr(err)
		is.Equal(obj, "foo!")
	}
	is.Equal(calls, 1)

	boom := errors.New("boom")
	_, err := Load(cfg, "bar", func(*config.Config, string) (any, error) {
		return nil, boom
	})
	is.Equal(err, boom)
}

func TestLexiconIsShared(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	path := filepath.Join(t.TempDir(), "tiny.txt")
	is.NoErr(os.WriteFile(path, []byte("cat\ncats\ndog\n"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, path)
	l1, err := Lexicon(cfg)
	is.NoErr(err)
	l2, err := Lexicon(cfg)
	is.NoErr(err)
	is.True(l1 == l2)
	is.Equal(l1.Name(), "tiny")
	is.True(l1.IsWord("CATS"))
}

func TestBoardsAreCopies(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	cfg := config.DefaultConfig()
	b1, err := Board(cfg)
	is.NoErr(err)
	is.NoErr(b1.SetTile(geometry.Position{Row: 7, Col: 7}, tilemapping.EnglishLetterDistribution().Tile('A')))

	b2, err := Board(cfg)
	is.NoErr(err)
	is.True(b1 != b2)
	is.True(!b2.HasTiles())

	ld, err := LetterDistribution(cfg)
	is.NoErr(err)
	is.Equal(ld.NumTotalTiles(), 100)
}
