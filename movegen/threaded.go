package movegen

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/tilemapping"
)

// GenAllParallel splits the anchors across threads workers. Each worker
// searches with its own generator and its own copy of the rack; their
// plays are merged and de-duplicated afterwards. The set of plays is the
// same as GenAll's.
func (gen *GordonGenerator) GenAllParallel(ctx context.Context, rack *tilemapping.Rack, threads int) ([]*move.Move, error) {
	if threads < 1 {
		threads = 1
	}
	anchors := FindAnchors(gen.board)
	work := make([][]Anchor, threads)
	for i, a := range anchors {
		work[i%threads] = append(work[i%threads], a)
	}

	results := make([][]*move.Move, threads)
	g, ctx := errgroup.WithContext(ctx)
	for t := range work {
		t := t
		worker := NewGordonGenerator(gen.lexicon, gen.board)
		worker.playRecorder = gen.playRecorder
		wrack := rack.Copy()
		g.Go(func() error {
			for _, a := range work[t] {
				if err := ctx.Err(); err != nil {
					return err
				}
				worker.genAnchor(a, wrack)
			}
			results[t] = worker.plays
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	gen.reset()
	for _, plays := range results {
		for _, p := range plays {
			if gen.markSeen(p) {
				gen.plays = append(gen.plays, p)
			}
		}
	}
	log.Debug().Int("anchors", len(anchors)).Int("threads", threads).
		Int("plays", len(gen.plays)).Msg("generated-plays-parallel")
	return gen.plays, nil
}
