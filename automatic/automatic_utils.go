package automatic

// Data collection for automatic games: computer vs computer, many at once.

import (
	"context"
	"errors"
	"expvar"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/lexigrid/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

type job struct {
	gameID int
	seed   int64
}

// PlayGames plays numGames computer vs computer games on up to threads
// workers and summarizes them. Every turn is appended as a YAML document
// to the file named by the autoplay-log setting, if any.
func PlayGames(ctx context.Context, cfg *config.Config, numGames, threads int) (*Summary, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	threads = max(1, threads)

	var out io.Writer
	if path := cfg.GetString(config.ConfigAutoplayLog); path != "" {
		logfile, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer logfile.Close()
		out = logfile
	}
	log.Info().Int("games", numGames).Int("threads", threads).Msg("starting-autoplay")
	CVCCounter.Set(0)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	return playGames(ctx, cfg, numGames, threads, out)
}

func playGames(ctx context.Context, cfg *config.Config, numGames, threads int,
	out io.Writer) (*Summary, error) {

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job, 100)
	var logChan chan TurnLog
	if out != nil {
		logChan = make(chan TurnLog, 100)
	}

	g.Go(func() error {
		defer close(jobs)
		for i, seed := range GenerateSeeds(cfg.GetInt64(config.ConfigSeed), numGames) {
			select {
			case jobs <- job{gameID: i, seed: seed}:
			case <-ctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return ctx.Err()
			}
			if (i+1)%1000 == 0 {
				log.Info().Int("queued", i+1).Msg("queued-jobs")
			}
		}
		return nil
	})

	summaries := make([]*Summary, threads)
	workers, wctx := errgroup.WithContext(ctx)
	for t := 0; t < threads; t++ {
		t := t
		summaries[t] = NewSummary()
		workers.Go(func() error {
			r, err := NewGameRunner(logChan, cfg)
			if err != nil {
				return err
			}
			for j := range jobs {
				res, err := r.PlayGame(wctx, j.gameID, j.seed)
				if err != nil {
					return err
				}
				summaries[t].Add(res)
				CVCCounter.Add(1)
			}
			return nil
		})
	}

	g.Go(func() error {
		err := workers.Wait()
		if logChan != nil {
			close(logChan)
		}
		return err
	})

	if logChan != nil {
		g.Go(func() error {
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			var werr error
			for tl := range logChan {
				// Drain the channel even after a write error.
				if werr == nil {
					werr = enc.Encode(tl)
				}
			}
			return werr
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	summary := NewSummary()
	for _, s := range summaries {
		summary.Merge(s)
	}
	log.Info().Int("games", summary.Games).Msg("all-games-finished")
	return summary, nil
}
