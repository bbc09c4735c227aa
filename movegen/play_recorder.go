package movegen

import (
	"slices"

	"github.com/cespare/xxhash"

	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

// A PlayRecorderFunc is called each time the search reaches a complete
// word. The placement so far is available through the generator.
type PlayRecorderFunc func(gen *GordonGenerator, rack *tilemapping.Rack)

func NullPlayRecorder(gen *GordonGenerator, rack *tilemapping.Rack) {}

// AllPlaysRecorder records every distinct placement of at least one tile.
// The same placement can be found from more than one anchor.
func AllPlaysRecorder(gen *GordonGenerator, rack *tilemapping.Rack) {
	if len(gen.placed) == 0 {
		return
	}
	play := gen.currentPlay()
	if !gen.markSeen(play) {
		return
	}
	gen.plays = append(gen.plays, play)
}

func (gen *GordonGenerator) currentPlay() *move.Move {
	return move.NewPlaceMove(gen.start, gen.anchor.Direction, gen.placed)
}

// markSeen returns false if the play was already recorded. Plays are
// bucketed by hash; keys in a bucket are compared in full.
func (gen *GordonGenerator) markSeen(play *move.Move) bool {
	key := play.Key()
	h := xxhash.Sum64String(key)
	if slices.Contains(gen.seen[h], key) {
		return false
	}
	gen.seen[h] = append(gen.seen[h], key)
	return true
}
