package move

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/tilemapping"
)

// MoveType is a type of move; a play, an exchange, or a pass.
type MoveType uint8

const (
	MoveTypePlace MoveType = iota
	MoveTypeExchange
	MoveTypePass
)

func (t MoveType) String() string {
	switch t {
	case MoveTypePlace:
		return "Place"
	case MoveTypeExchange:
		return "Exchange"
	case MoveTypePass:
		return "Pass"
	}
	return "UNHANDLED"
}

// Move is a move. For a placement, tiles are laid contiguously from start
// along dir, skipping squares that already hold a tile. Score and equity
// are filled in by whoever evaluates the move.
type Move struct {
	action MoveType
	start  geometry.Position
	dir    geometry.Direction
	tiles  []tilemapping.Tile
	score  int
	equity float64
	words  []string
}

// NewPlaceMove creates a placement. The tile slice is copied.
func NewPlaceMove(start geometry.Position, dir geometry.Direction, tiles []tilemapping.Tile) *Move {
	ts := make([]tilemapping.Tile, len(tiles))
	copy(ts, tiles)
	return &Move{
		action: MoveTypePlace,
		start:  start,
		dir:    dir,
		tiles:  ts,
	}
}

// NewExchangeMove creates an exchange of the given tiles.
func NewExchangeMove(tiles []tilemapping.Tile) *Move {
	ts := make([]tilemapping.Tile, len(tiles))
	copy(ts, tiles)
	return &Move{action: MoveTypeExchange, dir: geometry.NoDirection, tiles: ts}
}

// NewPassMove creates a pass.
func NewPassMove() *Move {
	return &Move{action: MoveTypePass, dir: geometry.NoDirection}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Start() geometry.Position {
	return m.start
}

func (m *Move) Direction() geometry.Direction {
	return m.dir
}

// Tiles returns the tiles placed or exchanged, in order.
func (m *Move) Tiles() []tilemapping.Tile {
	return m.tiles
}

// TilesPlayed returns the number of tiles that leave the rack.
func (m *Move) TilesPlayed() int {
	if m.action == MoveTypePass {
		return 0
	}
	return len(m.tiles)
}

func (m *Move) TilesString() string {
	return tilemapping.TilesString(m.tiles)
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) SetScore(s int) {
	m.score = s
}

// Equity is the value of this move as judged by a set of equity
// calculators. It is calculated outside this package.
func (m *Move) Equity() float64 {
	return m.equity
}

func (m *Move) SetEquity(e float64) {
	m.equity = e
}

// Words are the words formed by this move, as last scored.
func (m *Move) Words() []string {
	return m.words
}

func (m *Move) SetWords(w []string) {
	m.words = w
}

// Copy returns a deep copy.
func (m *Move) Copy() *Move {
	n := *m
	n.tiles = make([]tilemapping.Tile, len(m.tiles))
	copy(n.tiles, m.tiles)
	if m.words != nil {
		n.words = make([]string, len(m.words))
		copy(n.words, m.words)
	}
	return &n
}

// Key is a stable string that identifies the move, independent of any
// score or equity attached to it.
func (m *Move) Key() string {
	switch m.action {
	case MoveTypePlace:
		return fmt.Sprintf("P%d.%d.%d.%s", m.start.Row, m.start.Col, m.dir, m.TilesString())
	case MoveTypeExchange:
		return "X" + tilemapping.TilesString(sortedTiles(m.tiles))
	}
	return "-"
}

// Less orders moves best-first: higher equity, then higher score, then
// by position, direction and tiles. It is a total order over distinct
// moves, so sorting with it is deterministic.
func (m *Move) Less(o *Move) bool {
	if m.equity != o.equity {
		return m.equity > o.equity
	}
	if m.score != o.score {
		return m.score > o.score
	}
	if m.action != o.action {
		return m.action < o.action
	}
	if m.start.Row != o.start.Row {
		return m.start.Row < o.start.Row
	}
	if m.start.Col != o.start.Col {
		return m.start.Col < o.start.Col
	}
	if m.dir != o.dir {
		return m.dir < o.dir
	}
	return m.Key() < o.Key()
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlace:
		return fmt.Sprintf("<action: place %v %v %v score: %v equity: %.3f>",
			m.start, m.dir, m.TilesString(), m.score, m.equity)
	case MoveTypeExchange:
		return fmt.Sprintf("<action: exchange %v>", m.TilesString())
	case MoveTypePass:
		return "<action: pass>"
	}
	return "<Unhandled move>"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlace:
		return fmt.Sprintf("%v %v", ToBoardGameCoords(m.start, m.dir), m.TilesString())
	case MoveTypePass:
		return "(Pass)"
	case MoveTypeExchange:
		return fmt.Sprintf("(exch %v)", m.TilesString())
	}
	return "UNHANDLED"
}

// ToBoardGameCoords converts the position and orientation of the play to
// a coordinate like 8H (across) or H8 (down). Boards wider than the
// alphabet fall back to row,col.
func ToBoardGameCoords(p geometry.Position, dir geometry.Direction) string {
	if p.Col < 0 || p.Col >= 26 {
		return fmt.Sprintf("%d,%d", p.Row+1, p.Col+1)
	}
	colCoords := string(rune('A' + p.Col))
	rowCoords := strconv.Itoa(p.Row + 1)
	if dir == geometry.Down {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

func sortedTiles(ts []tilemapping.Tile) []tilemapping.Tile {
	r := tilemapping.NewRack(ts...)
	return r.TilesOn()
}

// WordsString joins the words for display.
func WordsString(words []string) string {
	return strings.Join(words, ", ")
}
