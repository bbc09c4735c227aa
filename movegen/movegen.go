// Package movegen contains all the move-generating functions. It walks a
// lexicon trie outward from every anchor on the board, in the manner of
// Appel & Jacobson, without cross-set pruning: every candidate it records
// still has to be scored and checked by the caller.
package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/board"
	"github.com/domino14/lexigrid/geometry"
	"github.com/domino14/lexigrid/lexicon"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

// MoveGenerator is a generic interface for generating moves.
type MoveGenerator interface {
	GenAll(rack *tilemapping.Rack) []*move.Move
	SetPlayRecorder(pf PlayRecorderFunc)
	Plays() []*move.Move
}

// GordonGenerator is the main move generation struct. The board and
// lexicon are only read; the rack and the in-progress placement are
// mutated and restored as the search backtracks.
type GordonGenerator struct {
	lexicon *lexicon.Trie
	board   *board.GameBoard

	anchor Anchor
	start  geometry.Position
	placed []tilemapping.Tile

	playRecorder PlayRecorderFunc
	plays        []*move.Move
	seen         map[uint64][]string
}

// NewGordonGenerator returns a Gordon move generator.
func NewGordonGenerator(lex *lexicon.Trie, b *board.GameBoard) *GordonGenerator {
	return &GordonGenerator{
		lexicon:      lex,
		board:        b,
		playRecorder: AllPlaysRecorder,
		placed:       make([]tilemapping.Tile, 0, 16),
		seen:         map[uint64][]string{},
	}
}

func (gen *GordonGenerator) SetPlayRecorder(pf PlayRecorderFunc) {
	gen.playRecorder = pf
}

func (gen *GordonGenerator) SetBoard(b *board.GameBoard) {
	gen.board = b
}

func (gen *GordonGenerator) Plays() []*move.Move {
	return gen.plays
}

func (gen *GordonGenerator) reset() {
	gen.plays = nil
	clear(gen.seen)
	gen.placed = gen.placed[:0]
}

// GenAll generates every placement reachable from the rack, at every
// anchor. The rack is back to its original contents when it returns.
func (gen *GordonGenerator) GenAll(rack *tilemapping.Rack) []*move.Move {
	gen.reset()
	anchors := FindAnchors(gen.board)
	for _, a := range anchors {
		gen.genAnchor(a, rack)
	}
	log.Debug().Int("anchors", len(anchors)).Int("plays", len(gen.plays)).
		Str("rack", rack.String()).Msg("generated-plays")
	return gen.plays
}

// genAnchor runs the search from a single anchor.
func (gen *GordonGenerator) genAnchor(a Anchor, rack *tilemapping.Rack) {
	gen.anchor = a
	gen.start = a.Position
	gen.placed = gen.placed[:0]

	if a.Limit > 0 {
		gen.leftPart(gen.lexicon.Root(), a.Limit, rack)
		return
	}
	// The squares before the anchor are fixed: either the edge, another
	// anchor, or tiles already on the board.
	var prefix []rune
	for p := a.Position.Translate(a.Direction, -1); gen.board.HasTile(p); p = p.Translate(a.Direction, -1) {
		prefix = append(prefix, gen.board.LetterAt(p))
	}
	for i, j := 0, len(prefix)-1; i < j; i, j = i+1, j-1 {
		prefix[i], prefix[j] = prefix[j], prefix[i]
	}
	node, ok := gen.lexicon.FindPrefix(string(prefix))
	if !ok {
		return
	}
	gen.extendRight(a.Position, node, rack)
}

// leftPart tries every prefix of up to limit rack tiles in front of the
// anchor, extending right from the anchor after each one.
func (gen *GordonGenerator) leftPart(node lexicon.NodeIdx, limit int, rack *tilemapping.Rack) {
	gen.extendRight(gen.anchor.Position, node, rack)
	if limit == 0 {
		return
	}
	dir := gen.anchor.Direction
	for _, e := range gen.lexicon.Edges(node) {
		gen.forEachTile(rack, e.Letter, func() {
			start := gen.start
			gen.start = start.Translate(dir, -1)
			defer func() { gen.start = start }()
			gen.leftPart(e.Child, limit-1, rack)
		})
	}
}

// extendRight continues the word at sq, through tiles on the board and
// then with tiles from the rack.
func (gen *GordonGenerator) extendRight(sq geometry.Position, node lexicon.NodeIdx, rack *tilemapping.Rack) {
	dir := gen.anchor.Direction
	if gen.board.HasTile(sq) {
		if next, ok := gen.lexicon.Child(node, gen.board.LetterAt(sq)); ok {
			gen.extendRight(sq.Next(dir), next, rack)
		}
		return
	}
	// A word that stops before the anchor does not touch anything.
	if gen.lexicon.IsFinal(node) && sq != gen.anchor.Position {
		gen.playRecorder(gen, rack)
	}
	if !gen.board.IsInBounds(sq) {
		return
	}
	for _, e := range gen.lexicon.Edges(node) {
		gen.forEachTile(rack, e.Letter, func() {
			gen.extendRight(sq.Next(dir), e.Child, rack)
		})
	}
}

// forEachTile runs f once with a natural tile for letter, and once with a
// blank standing for letter, for whichever of those the rack holds.
func (gen *GordonGenerator) forEachTile(rack *tilemapping.Rack, letter rune, f func()) {
	if letter != tilemapping.BlankLetter {
		if t, ok := rack.Lookup(letter); ok {
			gen.withTile(rack, t, f)
		}
	}
	if b, ok := rack.Lookup(tilemapping.BlankLetter); ok {
		b.Assigned = letter
		gen.withTile(rack, b, f)
	}
}

// withTile moves t from the rack onto the end of the placement for the
// duration of f.
func (gen *GordonGenerator) withTile(rack *tilemapping.Rack, t tilemapping.Tile, f func()) {
	if err := rack.Take(t); err != nil {
		log.Error().Err(err).Msg("rack-out-of-sync")
		return
	}
	gen.placed = append(gen.placed, t)
	defer func() {
		gen.placed = gen.placed[:len(gen.placed)-1]
		rack.Add(t)
	}()
	f()
}
