package equity

import (
	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

// ScoreCalculator values a play at its score.
type ScoreCalculator struct{}

func (ScoreCalculator) Equity(play *move.Move, board *board.GameBoard, rack *tilemapping.Rack) float64 {
	return float64(play.Score())
}

// BingoCalculator adds a bonus for playing a full rack.
type BingoCalculator struct {
	RackSize int
	Bonus    int
}

func (c BingoCalculator) Equity(play *move.Move, board *board.GameBoard, rack *tilemapping.Rack) float64 {
	if IsBingo(play, c.RackSize) {
		return float64(c.Bonus)
	}
	return 0
}

// IsBingo is true for placements that use rackSize tiles.
func IsBingo(play *move.Move, rackSize int) bool {
	return play.Action() == move.MoveTypePlace && rackSize > 0 && play.TilesPlayed() == rackSize
}
