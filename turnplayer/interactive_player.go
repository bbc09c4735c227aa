package turnplayer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

// InteractivePlayer reads moves typed by a person. Bad input is reported
// and asked for again; only a valid move or the end of input returns.
type InteractivePlayer struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
	dist *tilemapping.LetterDistribution
}

func NewInteractivePlayer(name string, in io.Reader, out io.Writer,
	dist *tilemapping.LetterDistribution) *InteractivePlayer {
	return &InteractivePlayer{name: name, in: bufio.NewScanner(in), out: out, dist: dist}
}

func (p *InteractivePlayer) ChooseMove(ctx context.Context, state TurnState) (*move.Move, error) {
	fmt.Fprint(p.out, state.Board.ToDisplayText())
	fmt.Fprintf(p.out, "Your hand: %v\n", state.Rack.String())
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprintf(p.out, "Your move, %v: ", p.name)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		m, err := p.readMove(p.in.Text(), state)
		if err != nil {
			fmt.Fprintf(p.out, "Error in move: %v\n\n", err)
			continue
		}
		return m, nil
	}
}

func (p *InteractivePlayer) readMove(line string, state TurnState) (*move.Move, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	m, err := move.ParseMove(fields, p.dist)
	if err != nil {
		return nil, err
	}
	if m.Action() == move.MoveTypePass {
		return m, nil
	}
	if len(m.Tiles()) == 0 {
		return nil, errors.New("no tiles given")
	}
	if err := state.Rack.Copy().TakeAll(m.Tiles()); err != nil {
		return nil, errors.New("you do not have those tiles")
	}
	if m.Action() == move.MoveTypeExchange {
		if len(m.Tiles()) > state.TilesInBag {
			return nil, fmt.Errorf("only %d tiles left in the bag", state.TilesInBag)
		}
		return m, nil
	}
	if reason, ok := score(m, state.Board, state.Lexicon); !ok {
		return nil, errors.New(reason)
	}
	return m, nil
}
