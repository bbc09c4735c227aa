package config

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath               = "data-path"
	ConfigBoardPath              = "board-path"
	ConfigLexiconPath            = "lexicon-path"
	ConfigLexiconEncoding        = "lexicon-encoding"
	ConfigLetterDistributionPath = "letter-distribution-path"
	ConfigRackSize               = "rack-size"
	ConfigBingoBonus             = "bingo-bonus"
	ConfigMaxPlayers             = "max-players"
	ConfigMovegenThreads         = "movegen-threads"
	ConfigSeed                   = "seed"
	ConfigDebug                  = "debug"
	ConfigAutoplayLog            = "autoplay-log"
)

// pathKeys are the settings holding filesystem paths. They get rewritten
// by AdjustRelativePaths.
var pathKeys = []string{ConfigDataPath, ConfigBoardPath, ConfigLexiconPath,
	ConfigLetterDistributionPath}

type Config struct {
	sync.Mutex
	viper.Viper

	args []string
}

// DefaultConfig returns a config with nothing but the default values
// and whatever the environment overrides.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// Load parses --key=value (or --key value) settings from args, binds
// LEXIGRID_* environment variables, and falls back to the flag defaults.
// Parsing stops at the first argument that is not a flag; that argument
// and everything after it are left in Args.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("lexigrid", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.String(ConfigDataPath, "./data", "directory holding data files")
	fs.String(ConfigBoardPath, "", "board layout file; empty for the standard 15x15 board")
	fs.String(ConfigLexiconPath, "./data/lexica/words.txt", "word list, whitespace separated")
	fs.String(ConfigLexiconEncoding, "utf8", "word list encoding: utf8 or iso-8859-1")
	fs.String(ConfigLetterDistributionPath, "", "letter distribution CSV; empty for English")
	fs.Int(ConfigRackSize, 7, "tiles on a full rack")
	fs.Int(ConfigBingoBonus, 50, "bonus for playing a full rack")
	fs.Int(ConfigMaxPlayers, 8, "most players in one game")
	fs.Int(ConfigMovegenThreads, 1, "goroutines per move generation")
	fs.Int64(ConfigSeed, 0, "bag seed; 0 for a random one")
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.String(ConfigAutoplayLog, "/tmp/autoplay.yaml", "where autoplay writes its turn log")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.Viper = *viper.New()
	c.SetEnvPrefix("lexigrid")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args returns the arguments left over after the settings.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths makes every relative path setting relative to
// basepath instead of the current working directory.
func (c *Config) AdjustRelativePaths(basepath string) {
	c.Lock()
	defer c.Unlock()
	for _, key := range pathKeys {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		abs := filepath.Join(basepath, p)
		log.Debug().Str("key", key).Str("path", abs).Msg("adjusted-relative-path")
		c.Set(key, abs)
	}
}

// SanitizedSettings returns all settings, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
