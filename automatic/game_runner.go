// Package automatic plays computer vs computer games and collects
// statistics about them.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/cache"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/game"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/tilemapping"
	"github.com/domino14/lexigrid/turnplayer"
)

// PlayerNames are the seats of an automatic game.
var PlayerNames = []string{"p1", "p2"}

// TurnLog is one line of the autoplay log, written as a YAML document.
// The last turn of a game carries the final scores.
type TurnLog struct {
	GameID         int         `yaml:"game"`
	Turn           int         `yaml:"turn"`
	Player         string      `yaml:"player"`
	Rack           string      `yaml:"rack"`
	Play           string      `yaml:"play"`
	Score          int         `yaml:"score"`
	Total          int         `yaml:"total"`
	TilesPlayed    int         `yaml:"tiles_played"`
	Equity         float64     `yaml:"equity"`
	TilesRemaining int         `yaml:"tiles_remaining"`
	Final          *GameResult `yaml:"final,omitempty"`
}

// GameResult is the outcome of a finished game. Players and Scores are
// in seat order, so Players[0] went first.
type GameResult struct {
	GameID  int      `yaml:"game"`
	Players []string `yaml:"players"`
	Scores  []int    `yaml:"scores"`
	Turns   int      `yaml:"turns"`
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	config  *config.Config
	lexicon *lexicon.Trie
	dist    *tilemapping.LetterDistribution
	player  turnplayer.MoveSource
	game    *game.Game
	logchan chan<- TurnLog
}

// NewGameRunner loads (or fetches from the cache) everything a game
// needs. Turns are sent to logchan if it is not nil.
func NewGameRunner(logchan chan<- TurnLog, cfg *config.Config) (*GameRunner, error) {
	lex, err := cache.Lexicon(cfg)
	if err != nil {
		return nil, err
	}
	dist, err := cache.LetterDistribution(cfg)
	if err != nil {
		return nil, err
	}
	return &GameRunner{
		config:  cfg,
		lexicon: lex,
		dist:    dist,
		player:  turnplayer.NewStaticPlayer(cfg),
		logchan: logchan,
	}, nil
}

// StartGame sets up a fresh game. Seats alternate from game to game so
// each player goes first half the time.
func (r *GameRunner) StartGame(gameID int, seed int64) error {
	b, err := cache.Board(r.config)
	if err != nil {
		return err
	}
	players := make([]game.PlayerInfo, len(PlayerNames))
	for i := range PlayerNames {
		name := PlayerNames[(i+gameID)%len(PlayerNames)]
		players[i] = game.PlayerInfo{Name: name, Source: r.player}
	}
	r.game, err = game.NewGameWithSeed(r.config, b, r.lexicon, r.dist, players, seed)
	return err
}

// PlayBestStaticTurn has the player on turn make their best static play.
func (r *GameRunner) PlayBestStaticTurn(ctx context.Context, gameID int) error {
	tilesRemaining := r.game.Bag().TilesRemaining()
	turn, err := r.game.PlayTurn(ctx)
	if err != nil {
		return err
	}
	if r.logchan == nil {
		return nil
	}
	tl := TurnLog{
		GameID:         gameID,
		Turn:           len(r.game.History()),
		Player:         turn.Name,
		Rack:           turn.Rack,
		Play:           turn.Move.ShortDescription(),
		Score:          turn.Points,
		Total:          turn.Total,
		TilesPlayed:    turn.Move.TilesPlayed(),
		Equity:         turn.Move.Equity(),
		TilesRemaining: tilesRemaining,
	}
	if r.game.IsOver() {
		tl.Final = r.result(gameID)
	}
	select {
	case r.logchan <- tl:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (r *GameRunner) result(gameID int) *GameResult {
	res := &GameResult{GameID: gameID, Turns: len(r.game.History())}
	for i := 0; i < r.game.NumPlayers(); i++ {
		res.Players = append(res.Players, r.game.NameFor(i))
		res.Scores = append(res.Scores, r.game.PointsFor(i))
	}
	return res
}

// PlayGame plays a whole game with the given bag seed.
func (r *GameRunner) PlayGame(ctx context.Context, gameID int, seed int64) (*GameResult, error) {
	if err := r.StartGame(gameID, seed); err != nil {
		return nil, err
	}
	for !r.game.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.PlayBestStaticTurn(ctx, gameID); err != nil {
			return nil, fmt.Errorf("game %d: %w", gameID, err)
		}
	}
	res := r.result(gameID)
	log.Debug().Int("game", gameID).Ints("scores", res.Scores).Msg("game-over")
	return res, nil
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}
