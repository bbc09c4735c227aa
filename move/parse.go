package move

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/tilemapping"
)

var ErrUnrecognizedMove = errors.New("unrecognized move")

// ParseMove parses the text form of a move, already split into fields:
//
//	PASS
//	EXCHANGE <tiles>
//	PLACE <-|\|> <row> <col> <tiles>
//
// Rows and columns are 1-indexed. A blank is written as ? followed by the
// letter it stands for.
func ParseMove(fields []string, dist *tilemapping.LetterDistribution) (*Move, error) {
	if len(fields) == 0 {
		return nil, ErrUnrecognizedMove
	}
	switch strings.ToUpper(fields[0]) {
	case "PASS":
		return NewPassMove(), nil
	case "EXCHANGE":
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: exchange takes one argument", ErrUnrecognizedMove)
		}
		tiles, err := tilemapping.ToTiles(fields[1], dist, true)
		if err != nil {
			return nil, err
		}
		return NewExchangeMove(tiles), nil
	case "PLACE":
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: place takes a direction, row, column and tiles",
				ErrUnrecognizedMove)
		}
		var dir geometry.Direction
		switch fields[1] {
		case "-":
			dir = geometry.Across
		case "|":
			dir = geometry.Down
		default:
			return nil, fmt.Errorf("%w: direction must be - or |", ErrUnrecognizedMove)
		}
		row, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("bad row: %w", err)
		}
		col, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("bad column: %w", err)
		}
		tiles, err := tilemapping.ToTiles(fields[4], dist, false)
		if err != nil {
			return nil, err
		}
		return NewPlaceMove(geometry.Position{Row: row - 1, Col: col - 1}, dir, tiles), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnrecognizedMove, fields[0])
}
