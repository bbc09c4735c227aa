package equity

import (
	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

// EquityCalculator is a calculator of equity.
type EquityCalculator interface {
	// Equity is a catch-all term for the value of a play beyond what
	// the board alone says. The play has already been scored.
	Equity(play *move.Move, board *board.GameBoard, rack *tilemapping.Rack) float64
}
