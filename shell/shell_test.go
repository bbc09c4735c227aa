package shell

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/move"
	th "github.com/domino14/lexigrid/testhelpers"
)

func lines(input string) func() (string, error) {
	s := bufio.NewScanner(strings.NewReader(input))
	return func() (string, error) {
		if !s.Scan() {
			return "", io.EOF
		}
		return s.Text(), nil
	}
}

func testController(t *testing.T, input string) (*ShellController, *bytes.Buffer) {
	dir := t.TempDir()
	path, err := th.WriteWordList(dir)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, path)
	cfg.Set(config.ConfigSeed, 42)
	cfg.Set(config.ConfigAutoplayLog, filepath.Join(dir, "autoplay.yaml"))
	out := &bytes.Buffer{}
	return newController(cfg, lines(input), out), out
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"place - 8 7 CAT",
			&shellcmd{"place", []string{"-", "8", "7", "CAT"}, CmdOptions{}},
			nil},
		{"new alice bob -human alice",
			&shellcmd{"new", []string{"alice", "bob"}, CmdOptions{"human": {"alice"}}},
			nil},
		{"new -human alice -human bob",
			&shellcmd{"new", nil, CmdOptions{"human": {"alice", "bob"}}},
			nil},
		{`analyze "/tmp/my log.yaml"`,
			&shellcmd{"analyze", []string{"/tmp/my log.yaml"}, CmdOptions{}},
			nil},
		{"new alice -human", nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestNeedsGame(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	for _, line := range []string{"board", "gen", "anchors", "pass", "turn", "rack ABC"} {
		_, err := sc.handle(line)
		is.Equal(err, errNoGame)
	}
	_, err := sc.handle("frobnicate")
	assert.EqualError(t, err, "command frobnicate not found")
}

func TestNewAndPlace(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	resp, err := sc.handle("new")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "p1"))
	is.True(strings.Contains(resp.message, "Bag + unseen: (93)"))

	_, err = sc.handle("rack CATERSE")
	is.NoErr(err)
	is.Equal(sc.game.RackFor(0).String(), "ACEERST")

	_, err = sc.handle("place - 8 7")
	is.True(errors.Is(err, move.ErrUnrecognizedMove))

	resp, err = sc.handle("place - 8 7 CAT")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "p1 played 8G CAT (CAT) for"))
	is.Equal(sc.game.PlayerOnTurn(), 1)
	is.True(sc.game.PointsFor(0) > 0)
	is.Equal(sc.game.Board().TilesPlayed(), 3)
}

func TestGenAndPlaceByNumber(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	_, err := sc.handle("new")
	is.NoErr(err)
	_, err = sc.handle("rack RETAINS")
	is.NoErr(err)

	resp, err := sc.handle("gen 3")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, moveTableHeader()))
	is.True(strings.Contains(resp.message, "  1: "))
	is.True(len(sc.curPlays) > 0 && len(sc.curPlays) <= 3)
	best := sc.curPlays[0]

	_, err = sc.handle("place #4")
	is.True(err != nil)
	_, err = sc.handle("place #1")
	is.NoErr(err)
	is.Equal(sc.game.Board().TilesPlayed(), best.TilesPlayed())
	is.True(sc.curPlays == nil)
}

func TestAnchors(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	_, err := sc.handle("new")
	is.NoErr(err)
	resp, err := sc.handle("anchors")
	is.NoErr(err)
	is.Equal(resp.message, "8H       across  limit 7\nH8       down    limit 7\n")
}

func TestPassAndExchange(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	_, err := sc.handle("new")
	is.NoErr(err)
	_, err = sc.handle("rack AAEEIIO")
	is.NoErr(err)
	resp, err := sc.handle("exchange AE")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "p1 played (exch AE). Score: 0"))
	is.Equal(sc.game.RackFor(0).NumTiles(), 7)

	resp, err = sc.handle("pass")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "p2 played (Pass)"))
	is.Equal(sc.game.PassesInRow(), 1)
}

func TestTurnWithComputer(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	_, err := sc.handle("new")
	is.NoErr(err)
	resp, err := sc.handle("turn")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "p1 played "))
	is.Equal(sc.game.PlayerOnTurn(), 1)
}

func TestPlayWithHumans(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, "PLACE - 1 1 CAT\nPASS\nPASS\n")
	_, err := sc.handle("new alice bob -human alice -human bob")
	is.NoErr(err)

	resp, err := sc.handle("play")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Game over."))
	is.True(sc.game.IsOver())
	is.Equal(sc.game.Board().TilesPlayed(), 0)

	printed := out.String()
	is.True(strings.Contains(printed, "Your move, alice: "))
	is.True(strings.Contains(printed, "Your move, bob: "))
	// The bad first move is retried, whatever alice holds.
	is.True(strings.Contains(printed, "Error in move: "))
	is.True(strings.Contains(printed, "alice played (Pass)"))
}

func TestPlayRunsOutOfInput(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	_, err := sc.handle("new alice -human alice")
	is.NoErr(err)
	_, err = sc.handle("play")
	is.Equal(err, io.EOF)
}

func TestAutoplayAndAnalyze(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	resp, err := sc.handle("autoplay 2 2")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Games played: 2"))

	resp, err = sc.handle("analyze")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Games played: 2"))
}

func TestSetConfig(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	_, err := sc.handle("setconfig bingo-bonus")
	is.True(err != nil)
	resp, err := sc.handle("setconfig bingo-bonus 35")
	is.NoErr(err)
	is.Equal(resp.message, "set bingo-bonus to 35")
	is.Equal(sc.config.GetInt(config.ConfigBingoBonus), 35)
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, "")
	resp, err := sc.handle("help")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Usage:"))
	resp, err = sc.handle("help place")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "place #n"))
	_, err = sc.handle("help frobnicate")
	is.True(err != nil)
}

func TestLoop(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t, "board\n\nexit\nboard\n")
	sig := make(chan os.Signal, 1)
	sc.Loop(sig)
	is.Equal(len(sig), 1)
	is.Equal(out.String(), "Error: "+errNoGame.Error()+"\n")
}
