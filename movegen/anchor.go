package movegen

import (
	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/geometry"
)

// An Anchor is an empty square where a new word can be hooked onto the
// existing tiles. Limit is the number of tiles that can be laid before it
// (to the left or above) without running into another anchor, a tile, or
// the edge of the board.
// Anchors are very tied to move generation so we put them in this package.
type Anchor struct {
	Position  geometry.Position
	Direction geometry.Direction
	Limit     int
}

// FindAnchors returns the anchors of the board, across anchors first in
// row-major order, then down anchors in column-major order. An empty board
// has just the start square, once per direction.
func FindAnchors(b *board.GameBoard) []Anchor {
	start := b.Start()
	if !b.HasTiles() {
		return []Anchor{
			{Position: start, Direction: geometry.Across, Limit: start.Col},
			{Position: start, Direction: geometry.Down, Limit: start.Row},
		}
	}
	rows, cols := b.Dim()
	var anchors []Anchor
	scan := func(dir geometry.Direction, lines, length int, pos func(line, i int) geometry.Position) {
		for line := 0; line < lines; line++ {
			marker := 0
			for i := 0; i < length; i++ {
				p := pos(line, i)
				if touchesTile(b, p) {
					if !b.HasTile(p) {
						anchors = append(anchors, Anchor{Position: p, Direction: dir, Limit: i - marker})
					}
					marker = i + 1
				}
				if b.HasTile(p) {
					marker = i + 1
				}
			}
		}
	}
	scan(geometry.Across, rows, cols, func(line, i int) geometry.Position {
		return geometry.Position{Row: line, Col: i}
	})
	scan(geometry.Down, cols, rows, func(line, i int) geometry.Position {
		return geometry.Position{Row: i, Col: line}
	})
	return anchors
}

func touchesTile(b *board.GameBoard, p geometry.Position) bool {
	return b.HasTile(p.Translate(geometry.Across, -1)) ||
		b.HasTile(p.Translate(geometry.Across, 1)) ||
		b.HasTile(p.Translate(geometry.Down, -1)) ||
		b.HasTile(p.Translate(geometry.Down, 1))
}
