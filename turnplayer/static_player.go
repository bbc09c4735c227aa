package turnplayer

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/equity"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/movegen"
	"github.com/domino14/lexigrid/tilemapping"
)

// StaticPlayer picks the play with the best static equity out of every
// play the generator finds.
type StaticPlayer struct {
	calculators []equity.EquityCalculator
	threads     int
}

// NewStaticPlayer values plays at their score plus the bingo bonus.
func NewStaticPlayer(cfg *config.Config) *StaticPlayer {
	return &StaticPlayer{
		calculators: []equity.EquityCalculator{
			equity.ScoreCalculator{},
			equity.BingoCalculator{
				RackSize: cfg.GetInt(config.ConfigRackSize),
				Bonus:    cfg.GetInt(config.ConfigBingoBonus),
			},
		},
		threads: cfg.GetInt(config.ConfigMovegenThreads),
	}
}

// NewStaticPlayerWithCalculators uses the given calculators and a
// single search thread.
func NewStaticPlayerWithCalculators(calcs ...equity.EquityCalculator) *StaticPlayer {
	return &StaticPlayer{calculators: calcs, threads: 1}
}

// GenerateMoves returns every legal, scored placement for the rack,
// with equities assigned. Candidates that do not fit the board, form a
// word outside the lexicon, or place no tiles are dropped.
func (p *StaticPlayer) GenerateMoves(ctx context.Context, state TurnState) ([]*move.Move, error) {
	gen := movegen.NewGordonGenerator(state.Lexicon, state.Board)
	var candidates []*move.Move
	if p.threads > 1 {
		var err error
		candidates, err = gen.GenAllParallel(ctx, state.Rack, p.threads)
		if err != nil {
			return nil, err
		}
	} else {
		candidates = gen.GenAll(state.Rack)
	}
	plays := lo.Filter(candidates, func(m *move.Move, _ int) bool {
		if m.TilesPlayed() == 0 {
			return false
		}
		_, ok := score(m, state.Board, state.Lexicon)
		return ok
	})
	p.AssignEquity(plays, state.Board, state.Rack)
	log.Debug().Int("candidates", len(candidates)).Int("legal", len(plays)).Msg("generated-moves")
	return plays, nil
}

func (p *StaticPlayer) AssignEquity(plays []*move.Move, b *board.GameBoard, rack *tilemapping.Rack) {
	for _, m := range plays {
		m.SetEquity(lo.SumBy(p.calculators, func(c equity.EquityCalculator) float64 {
			return c.Equity(m, b, rack)
		}))
	}
}

// TopPlays sorts plays best first and returns up to ct of them.
func (p *StaticPlayer) TopPlays(plays []*move.Move, ct int) []*move.Move {
	sort.Slice(plays, func(i, j int) bool {
		return plays[i].Less(plays[j])
	})
	if ct > len(plays) {
		ct = len(plays)
	}
	return plays[:ct]
}

// ChooseMove returns the play with the highest equity. Equal plays are
// decided by move.Less, so the choice never depends on search order. With
// nothing legal to play it passes.
func (p *StaticPlayer) ChooseMove(ctx context.Context, state TurnState) (*move.Move, error) {
	plays, err := p.GenerateMoves(ctx, state)
	if err != nil {
		return nil, err
	}
	if len(plays) == 0 {
		return move.NewPassMove(), nil
	}
	return lo.MinBy(plays, func(a, b *move.Move) bool { return a.Less(b) }), nil
}
