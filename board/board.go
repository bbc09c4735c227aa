package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/tilemapping"
)

var ErrInvalidBoard = errors.New("invalid board")

// StandardLayout is a 15x15 layout in board file notation.
var StandardLayout = []string{
	"t..2...t...2..t",
	".d...3...3...d.",
	"..d...2.2...d..",
	"2..d...2...d..2",
	"....d.....d....",
	".3...3...3...3.",
	"..2...2.2...2..",
	"t..2...d...2..t",
	"..2...2.2...2..",
	".3...3...3...3.",
	"....d.....d....",
	"2..d...2...d..2",
	"..d...2.2...d..",
	".d...3...3...d.",
	"t..2...t...2..t",
}

// A GameBoard is the main board structure: a grid of squares, the square
// the first move must cover, and a count of completed turns.
type GameBoard struct {
	squares     [][]Square
	rows        int
	cols        int
	start       geometry.Position
	moveIndex   int
	tilesPlayed int
}

// MakeBoard creates a board from rows of bonus characters.
func MakeBoard(desc []string, start geometry.Position) (*GameBoard, error) {
	if len(desc) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}
	g := &GameBoard{rows: len(desc), start: start}
	for i, s := range desc {
		row := []Square{}
		for _, c := range s {
			sq, err := newSquare(BonusSquare(c))
			if err != nil {
				return nil, err
			}
			row = append(row, sq)
		}
		if i == 0 {
			g.cols = len(row)
		} else if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrInvalidBoard, i, len(row), g.cols)
		}
		g.squares = append(g.squares, row)
	}
	if !g.IsInBounds(start) {
		return nil, fmt.Errorf("%w: start %v is off the board", ErrInvalidBoard, start)
	}
	return g, nil
}

// StandardBoard returns an empty board with the standard layout.
func StandardBoard() *GameBoard {
	g, err := MakeBoard(StandardLayout, geometry.Position{Row: 7, Col: 7})
	if err != nil {
		panic(err)
	}
	return g
}

// LoadBoard reads a board description: a header line
// "rows columns start_row start_col" followed by rows*columns bonus
// characters. Whitespace between characters is ignored.
func LoadBoard(r io.Reader) (*GameBoard, error) {
	br := bufio.NewReader(r)
	var rows, cols int
	var start geometry.Position
	_, err := fmt.Fscan(br, &rows, &cols, &start.Row, &start.Col)
	if err != nil {
		return nil, fmt.Errorf("%w: bad header: %v", ErrInvalidBoard, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidBoard, rows, cols)
	}
	desc := make([]string, 0, rows)
	var sb strings.Builder
	for len(desc) < rows {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, rows, len(desc))
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(c) {
			continue
		}
		sb.WriteRune(c)
		if sb.Len() == cols {
			desc = append(desc, sb.String())
			sb.Reset()
		}
	}
	return MakeBoard(desc, start)
}

// LoadBoardFile loads a board file from disk.
func LoadBoardFile(path string) (*GameBoard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open board file: %w", err)
	}
	defer f.Close()
	g, err := LoadBoard(f)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	log.Debug().Str("path", path).Int("rows", g.rows).Int("cols", g.cols).Msg("loaded-board")
	return g, nil
}

// Dim returns the number of rows and columns.
func (g *GameBoard) Dim() (int, int) {
	return g.rows, g.cols
}

func (g *GameBoard) Start() geometry.Position {
	return g.start
}

// MoveIndex counts completed turns, passes and exchanges included.
func (g *GameBoard) MoveIndex() int {
	return g.moveIndex
}

// HasTiles returns whether any tile has been played.
func (g *GameBoard) HasTiles() bool {
	return g.tilesPlayed > 0
}

func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

func (g *GameBoard) IsInBounds(p geometry.Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the square at p. p must be in bounds.
func (g *GameBoard) At(p geometry.Position) *Square {
	return &g.squares[p.Row][p.Col]
}

// HasTile is true if p is on the board and holds a tile.
func (g *GameBoard) HasTile(p geometry.Position) bool {
	return g.IsInBounds(p) && g.squares[p.Row][p.Col].occupied
}

// LetterAt returns the displayed letter at p, or 0.
func (g *GameBoard) LetterAt(p geometry.Position) rune {
	if !g.IsInBounds(p) {
		return 0
	}
	return g.At(p).Letter()
}

// SetTile puts a tile on an empty square without any validation or turn
// accounting. It is meant for setting up positions.
func (g *GameBoard) SetTile(p geometry.Position, t tilemapping.Tile) error {
	if !g.IsInBounds(p) {
		return fmt.Errorf("position %v is off the board", p)
	}
	if g.At(p).HasTile() {
		return fmt.Errorf("position %v already holds a tile", p)
	}
	g.At(p).setTile(t)
	g.tilesPlayed++
	return nil
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	n := *g
	n.squares = make([][]Square, len(g.squares))
	for i, row := range g.squares {
		n.squares[i] = make([]Square, len(row))
		copy(n.squares[i], row)
	}
	return &n
}

// ToDisplayText returns a plain text picture of the board, with 1-indexed
// row and column labels. Blanks show in lower case.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("    ")
	for c := 0; c < g.cols; c++ {
		fmt.Fprintf(&sb, "%-3d", c+1)
	}
	sb.WriteString("\n")
	for r := 0; r < g.rows; r++ {
		fmt.Fprintf(&sb, "%3d ", r+1)
		for c := 0; c < g.cols; c++ {
			p := geometry.Position{Row: r, Col: c}
			cell := g.At(p).DisplayString()
			if p == g.start && !g.At(p).HasTile() {
				cell = "*"
			}
			fmt.Fprintf(&sb, "%-3s", cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
