package turnplayer

import (
	"context"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

// TurnState is what a player gets to see when it is asked for a move.
// None of it may be modified.
type TurnState struct {
	Board      *board.GameBoard
	Lexicon    *lexicon.Trie
	Rack       *tilemapping.Rack
	TilesInBag int
}

// MoveSource produces the move for a turn. A returned placement has
// already been scored against the board.
type MoveSource interface {
	ChooseMove(ctx context.Context, state TurnState) (*move.Move, error)
}

// score validates a placement against the board and lexicon and, if it
// passes, attaches its score and words. It returns the reason for
// rejecting it otherwise.
func score(m *move.Move, b *board.GameBoard, lex lexicon.Lexicon) (string, bool) {
	res := b.TestPlace(m)
	if !res.Valid {
		return res.Err, false
	}
	for _, w := range res.Words {
		if !lex.IsWord(w) {
			return w + " is not a word", false
		}
	}
	m.SetScore(res.Points)
	m.SetWords(res.Words)
	return "", true
}
