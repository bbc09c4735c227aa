package automatic

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexigrid/config"
)

func TestPlayGamesWritesLog(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	logfile := filepath.Join(t.TempDir(), "autoplay.yaml")
	cfg.Set(config.ConfigAutoplayLog, logfile)

	summary, err := PlayGames(context.Background(), cfg, 4, 2)
	is.NoErr(err)
	is.Equal(summary.Games, 4)
	is.Equal(summary.WentFirst["p1"], 2)
	is.Equal(summary.WentFirst["p2"], 2)
	is.Equal(summary.Wins["p1"]+summary.Wins["p2"], 4.0)
	is.Equal(summary.FirstSpread.Iterations(), 4)
	is.Equal(CVCCounter.Value(), int64(4))
	is.Equal(IsPlaying.Value(), int64(0))

	fromLog, err := AnalyzeLogFile(logfile)
	is.NoErr(err)
	is.Equal(fromLog.Games, 4)
	is.Equal(fromLog.Wins, summary.Wins)
	assert.InDelta(t, summary.Scores["p1"].Mean(), fromLog.Scores["p1"].Mean(), 1e-9)
	assert.InDelta(t, summary.FirstSpread.Stdev(), fromLog.FirstSpread.Stdev(), 1e-9)
}

func TestPlayGamesThreadsAgree(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)

	one, err := PlayGames(context.Background(), cfg, 3, 1)
	is.NoErr(err)
	three, err := PlayGames(context.Background(), cfg, 3, 3)
	is.NoErr(err)
	is.Equal(one.Wins, three.Wins)
	assert.InDelta(t, one.FirstSpread.Mean(), three.FirstSpread.Mean(), 1e-9)
}

func TestPlayGamesCancelled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := PlayGames(ctx, cfg, 10, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummary(t *testing.T) {
	is := is.New(t)
	s := NewSummary()
	s.Add(&GameResult{Players: []string{"p1", "p2"}, Scores: []int{400, 350}})
	s.Add(&GameResult{Players: []string{"p2", "p1"}, Scores: []int{300, 300}})
	s.Add(&GameResult{Players: []string{"p1", "p2"}, Scores: []int{380, 420}})

	is.Equal(s.Games, 3)
	is.Equal(s.Wins["p1"], 1.5)
	is.Equal(s.Wins["p2"], 1.5)
	is.Equal(s.WentFirstWins, 1.5)
	is.Equal(s.WentFirst["p1"], 2)
	assert.InDelta(t, (50.0+0-40)/3, s.FirstSpread.Mean(), 1e-9)
	is.Equal(s.Players(), []string{"p1", "p2"})

	other := NewSummary()
	other.Add(&GameResult{Players: []string{"p2", "p1"}, Scores: []int{410, 390}})
	s.Merge(other)
	is.Equal(s.Games, 4)
	is.Equal(s.Wins["p2"], 2.5)
	is.Equal(s.Scores["p1"].Iterations(), 4)
	is.Equal(s.WentFirstWins, 2.5)

	out := s.String()
	is.True(strings.Contains(out, "Games played: 4"))
	is.True(strings.Contains(out, "p2 wins: 2.5 (62.500%)"))
	is.True(strings.Contains(out, "95% CI"))
	is.True(strings.Contains(out, "p1 final scores:"))
}

func TestGenerateSeeds(t *testing.T) {
	is := is.New(t)
	is.Equal(GenerateSeeds(10, 3), []int64{10, 11, 12})
	is.Equal(GenerateSeeds(-1, 3), []int64{-1, 2, 1})
	for _, s := range GenerateSeeds(0, 50) {
		is.True(s > 0)
	}
}
