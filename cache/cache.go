// Package cache holds large objects loaded from disk so that every game
// in the process shares one copy, e.g. the lexicon trie.
package cache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/tilemapping"
)

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

func (c *cache) load(cfg *config.Config, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	obj, ok := c.objects[key]
	if !ok {
		err := c.load(cfg, key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

// CreateGlobalObjectCache replaces the cache with an empty one.
func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

func init() {
	CreateGlobalObjectCache()
}

// Load returns the object stored under key, calling loadFunc to create
// it the first time.
func Load(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	return GlobalObjectCache.get(cfg, key, loadFunc)
}

func typedLoad[T any](cfg *config.Config, key string, loadFunc loadFunc) (T, error) {
	var zero T
	obj, err := Load(cfg, key, loadFunc)
	if err != nil {
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("cached object %v has type %T", key, obj)
	}
	return t, nil
}

// Lexicon returns the trie for the configured lexicon file. The trie is
// shared and must not have words added to it.
func Lexicon(cfg *config.Config) (*lexicon.Trie, error) {
	path := cfg.GetString(config.ConfigLexiconPath)
	encoding := cfg.GetString(config.ConfigLexiconEncoding)
	return typedLoad[*lexicon.Trie](cfg, "lexicon:"+encoding+":"+path,
		func(cfg *config.Config, key string) (any, error) {
			return lexicon.LoadFile(path, encoding)
		})
}

// LetterDistribution returns the configured distribution, English if no
// file is set.
func LetterDistribution(cfg *config.Config) (*tilemapping.LetterDistribution, error) {
	path := cfg.GetString(config.ConfigLetterDistributionPath)
	return typedLoad[*tilemapping.LetterDistribution](cfg, "dist:"+path,
		func(cfg *config.Config, key string) (any, error) {
			return tilemapping.LoadLetterDistribution(path)
		})
}

// Board returns a fresh copy of the configured board, the standard
// layout if no file is set.
func Board(cfg *config.Config) (*board.GameBoard, error) {
	path := cfg.GetString(config.ConfigBoardPath)
	b, err := typedLoad[*board.GameBoard](cfg, "board:"+path,
		func(cfg *config.Config, key string) (any, error) {
			if path == "" {
				return board.StandardBoard(), nil
			}
			return board.LoadBoardFile(path)
		})
	if err != nil {
		return nil, err
	}
	return b.Copy(), nil
}
