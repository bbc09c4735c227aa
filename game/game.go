// Package game keeps the score of a game: whose turn it is, what every
// player holds, and when the game is over.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
	"github.com/domino14/lexigrid/turnplayer"
)

var (
	ErrGameOver     = errors.New("game is over")
	ErrIllegalMove  = errors.New("illegal move")
	ErrTooManyTiles = errors.New("not enough tiles in the bag")
)

type PlayState uint8

const (
	StatePlaying PlayState = iota
	StateGameOver
)

func (s PlayState) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

// Turn is the record of one committed move.
type Turn struct {
	Player int
	Name   string
	// Rack is what the player held before moving.
	Rack   string
	Move   *move.Move
	Points int
	Bingo  bool
	Total  int
}

// Game is the state of a game in progress. The board's move index
// decides who is on turn.
type Game struct {
	board   *board.GameBoard
	lexicon *lexicon.Trie
	dist    *tilemapping.LetterDistribution
	bag     *tilemapping.Bag
	players playerStates

	rackSize   int
	bingoBonus int

	passesInRow int
	playing     PlayState
	wentOut     int
	history     []Turn
}

// NewGame seats the players and deals every rack, in seat order. The
// board is used as is and may already hold tiles.
func NewGame(cfg *config.Config, b *board.GameBoard, lex *lexicon.Trie,
	dist *tilemapping.LetterDistribution, players []PlayerInfo) (*Game, error) {
	return NewGameWithSeed(cfg, b, lex, dist, players, cfg.GetInt64(config.ConfigSeed))
}

// NewGameWithSeed is NewGame with the bag seeded by seed instead of the
// configured seed. Zero means random.
func NewGameWithSeed(cfg *config.Config, b *board.GameBoard, lex *lexicon.Trie,
	dist *tilemapping.LetterDistribution, players []PlayerInfo, seed int64) (*Game, error) {

	maxPlayers := cfg.GetInt(config.ConfigMaxPlayers)
	if len(players) == 0 {
		return nil, errors.New("need at least one player")
	}
	if len(players) > maxPlayers {
		return nil, fmt.Errorf("maximum %d players", maxPlayers)
	}
	g := &Game{
		board:      b,
		lexicon:    lex,
		dist:       dist,
		bag:        dist.MakeBag(seed),
		rackSize:   cfg.GetInt(config.ConfigRackSize),
		bingoBonus: cfg.GetInt(config.ConfigBingoBonus),
		wentOut:    -1,
	}
	for _, info := range players {
		g.players = append(g.players, newPlayerState(info))
	}
	for _, p := range g.players {
		p.rack.Set(g.bag.DrawAtMost(g.rackSize))
	}
	log.Debug().Int("players", len(g.players)).Int("bag", g.bag.TilesRemaining()).
		Msg("new-game")
	return g, nil
}

func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Bag() *tilemapping.Bag {
	return g.bag
}

func (g *Game) Lexicon() *lexicon.Trie {
	return g.lexicon
}

func (g *Game) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

// PlayerOnTurn returns the index of the player who moves next.
func (g *Game) PlayerOnTurn() int {
	return g.board.MoveIndex() % len(g.players)
}

func (g *Game) NameFor(idx int) string {
	return g.players[idx].Name
}

// RackFor returns the rack of the given player. It must not be modified.
func (g *Game) RackFor(idx int) *tilemapping.Rack {
	return g.players[idx].rack
}

func (g *Game) PointsFor(idx int) int {
	return g.players[idx].points
}

func (g *Game) BingosFor(idx int) int {
	return g.players[idx].bingos
}

func (g *Game) TurnsFor(idx int) int {
	return g.players[idx].turns
}

// SpreadFor returns the player's score minus the best other score.
func (g *Game) SpreadFor(idx int) int {
	best := lo.Max(lo.FilterMap(g.players, func(p *playerState, i int) (int, bool) {
		return p.points, i != idx
	}))
	return g.players[idx].points - best
}

// PassesInRow counts the passes made since the last exchange or placement.
func (g *Game) PassesInRow() int {
	return g.passesInRow
}

func (g *Game) Playing() PlayState {
	return g.playing
}

func (g *Game) IsOver() bool {
	return g.playing == StateGameOver
}

// History returns the committed turns, oldest first.
func (g *Game) History() []Turn {
	return g.history
}

// SetRackFor throws the player's rack back into the bag and gives them the
// given tiles out of it instead.
func (g *Game) SetRackFor(idx int, rack *tilemapping.Rack) error {
	p := g.players[idx]
	p.throwRackIn(g.bag)
	tiles := rack.TilesOn()
	if err := g.bag.RemoveTiles(tiles); err != nil {
		// Take back a rack, any rack.
		p.rack.Set(g.bag.DrawAtMost(g.rackSize))
		return err
	}
	p.rack.Set(tiles)
	return nil
}

// TurnState is what the player on turn gets to see.
func (g *Game) TurnState() turnplayer.TurnState {
	return turnplayer.TurnState{
		Board:      g.board,
		Lexicon:    g.lexicon,
		Rack:       g.players[g.PlayerOnTurn()].rack.Copy(),
		TilesInBag: g.bag.TilesRemaining(),
	}
}

// PlayTurn asks the player on turn for a move and commits it.
func (g *Game) PlayTurn(ctx context.Context) (*Turn, error) {
	if g.IsOver() {
		return nil, ErrGameOver
	}
	p := g.players[g.PlayerOnTurn()]
	if p.Source == nil {
		return nil, fmt.Errorf("player %v has no move source", p.Name)
	}
	m, err := p.Source.ChooseMove(ctx, g.TurnState())
	if err != nil {
		return nil, err
	}
	return g.PlayMove(m)
}

// ValidateMove checks that the player on turn can make this move: they
// hold the tiles, the placement fits the board and every word it forms
// is in the lexicon. A valid placement gets its score and words set.
func (g *Game) ValidateMove(m *move.Move) error {
	rack := g.players[g.PlayerOnTurn()].rack
	switch m.Action() {
	case move.MoveTypePass:
		return nil
	case move.MoveTypeExchange:
		if m.TilesPlayed() == 0 {
			return fmt.Errorf("%w: nothing to exchange", ErrIllegalMove)
		}
		if m.TilesPlayed() > g.bag.TilesRemaining() {
			return fmt.Errorf("%w: %d tiles left in the bag", ErrTooManyTiles,
				g.bag.TilesRemaining())
		}
	}
	if err := rack.Copy().TakeAll(m.Tiles()); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	if m.Action() != move.MoveTypePlace {
		return nil
	}
	res := g.board.TestPlace(m)
	if !res.Valid {
		return fmt.Errorf("%w: %v", ErrIllegalMove, res.Err)
	}
	for _, w := range res.Words {
		if !g.lexicon.IsWord(w) {
			return fmt.Errorf("%w: %v is not a word", ErrIllegalMove, w)
		}
	}
	m.SetScore(res.Points)
	m.SetWords(res.Words)
	return nil
}

// PlayMove validates and commits a move for the player on turn, then
// ends the game if it is over.
func (g *Game) PlayMove(m *move.Move) (*Turn, error) {
	if g.IsOver() {
		return nil, ErrGameOver
	}
	if err := g.ValidateMove(m); err != nil {
		return nil, err
	}
	onturn := g.PlayerOnTurn()
	p := g.players[onturn]
	turn := Turn{
		Player: onturn,
		Name:   p.Name,
		Rack:   p.rack.String(),
		Move:   m,
	}

	switch m.Action() {
	case move.MoveTypePlace:
		res := g.board.Place(m)
		turn.Points = res.Points
		if m.TilesPlayed() == g.rackSize {
			turn.Points += g.bingoBonus
			turn.Bingo = true
			p.bingos++
		}
		// Validated above.
		_ = p.rack.TakeAll(m.Tiles())
		for _, t := range g.bag.DrawAtMost(m.TilesPlayed()) {
			p.rack.Add(t)
		}
		g.passesInRow = 0

	case move.MoveTypeExchange:
		drew, err := g.bag.Exchange(m.Tiles())
		if err != nil {
			return nil, err
		}
		_ = p.rack.TakeAll(m.Tiles())
		for _, t := range drew {
			p.rack.Add(t)
		}
		g.board.Place(m)
		g.passesInRow = 0
		log.Debug().Str("newrack", p.rack.String()).Msg("new-rack")

	case move.MoveTypePass:
		g.board.Place(m)
		g.passesInRow++
	}

	p.points += turn.Points
	p.turns++
	turn.Total = p.points
	g.history = append(g.history, turn)
	log.Debug().Str("player", p.Name).Str("move", m.ShortDescription()).
		Int("points", turn.Points).Int("total", p.points).Msg("played")

	if p.rack.Empty() && g.bag.TilesRemaining() == 0 {
		g.wentOut = onturn
		g.EndGame()
	} else if g.passesInRow >= len(g.players) {
		log.Debug().Int("passes", g.passesInRow).Msg("game ended with consecutive passes")
		g.EndGame()
	}
	return &turn, nil
}

// EndGame performs the final subtraction. Every player loses the value
// of the tiles left on their rack; a player who went out gains the total
// of what the others lost. Calling it again does nothing.
func (g *Game) EndGame() {
	if g.IsOver() {
		return
	}
	g.playing = StateGameOver
	totalLost := 0
	for _, p := range g.players {
		lost := p.rack.ScoreOn()
		p.points -= lost
		totalLost += lost
	}
	for idx, p := range g.players {
		if p.rack.Empty() {
			g.wentOut = idx
		}
	}
	if g.wentOut >= 0 {
		g.players[g.wentOut].points += totalLost
	}
	log.Info().Int("wentout", g.wentOut).Int("unplayed", totalLost).Msg("game is over")
}

// WentOut returns the player who emptied their rack, or -1.
func (g *Game) WentOut() int {
	return g.wentOut
}

// Winners returns the players with the highest score. There is more than
// one on a tie.
func (g *Game) Winners() []int {
	best := lo.MaxBy(g.players, func(a, b *playerState) bool {
		return a.points > b.points
	}).points
	var winners []int
	for idx, p := range g.players {
		if p.points == best {
			winners = append(winners, idx)
		}
	}
	return winners
}
