package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/automatic"
	"github.com/domino14/lexigrid/cache"
	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/game"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/movegen"
	"github.com/domino14/lexigrid/tilemapping"
	"github.com/domino14/lexigrid/turnplayer"
)

const defaultNumPlays = 15

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	names := cmd.args
	if len(names) == 0 {
		names = []string{"p1", "p2"}
	}
	lex, err := cache.Lexicon(sc.config)
	if err != nil {
		return nil, err
	}
	dist, err := cache.LetterDistribution(sc.config)
	if err != nil {
		return nil, err
	}
	b, err := cache.Board(sc.config)
	if err != nil {
		return nil, err
	}

	sc.humans = map[string]bool{}
	for _, h := range cmd.options.StringArray("human") {
		sc.humans[h] = true
	}
	// Human seats read moves from the shell's own input.
	in := &lineReader{readLine: sc.readLine}
	players := make([]game.PlayerInfo, len(names))
	for i, name := range names {
		var source turnplayer.MoveSource = sc.static
		if sc.humans[name] {
			source = turnplayer.NewInteractivePlayer(name, in, sc.out, dist)
		}
		players[i] = game.PlayerInfo{Name: name, Source: source}
	}
	g, err := game.NewGame(sc.config, b, lex, dist, players)
	if err != nil {
		return nil, err
	}
	sc.game = g
	sc.curPlays = nil
	log.Info().Strs("players", names).Str("lexicon", lex.Name()).Msg("new-game")
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: rack <tiles>")
	}
	tiles, err := tilemapping.ToTiles(cmd.args[0], sc.game.LetterDistribution(), true)
	if err != nil {
		return nil, err
	}
	err = sc.game.SetRackFor(sc.game.PlayerOnTurn(), tilemapping.NewRack(tiles...))
	if err != nil {
		return nil, err
	}
	sc.curPlays = nil
	return msg(sc.game.ToDisplayText()), nil
}

func moveTableHeader() string {
	return "     Move                Leave  Score Equity"
}

// MoveTableRow is one line of the gen output. The leave is what stays on
// the rack after the move.
func MoveTableRow(idx int, m *move.Move, rack *tilemapping.Rack) string {
	leave := rack.Copy()
	_ = leave.TakeAll(m.Tiles())
	return fmt.Sprintf("%3d: %-20s%-7s%-6d%-6.2f", idx+1,
		m.ShortDescription(), leave.String(), m.Score(), m.Equity())
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	numPlays := defaultNumPlays
	if len(cmd.args) > 0 {
		var err error
		numPlays, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	state := sc.game.TurnState()
	plays, err := sc.static.GenerateMoves(context.Background(), state)
	if err != nil {
		return nil, err
	}
	sc.curPlays = sc.static.TopPlays(plays, numPlays)

	var out strings.Builder
	out.WriteString(moveTableHeader() + "\n")
	for i, p := range sc.curPlays {
		out.WriteString(MoveTableRow(i, p, state.Rack) + "\n")
	}
	if len(sc.curPlays) == 0 {
		out.WriteString("No plays found.\n")
	}
	return msg(out.String()), nil
}

func (sc *ShellController) anchors(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	var out strings.Builder
	for _, a := range movegen.FindAnchors(sc.game.Board()) {
		fmt.Fprintf(&out, "%-8s %-7s limit %d\n",
			move.ToBoardGameCoords(a.Position, a.Direction), a.Direction, a.Limit)
	}
	return msg(out.String()), nil
}

func (sc *ShellController) commit(m *move.Move) (*Response, error) {
	turn, err := sc.game.PlayMove(m)
	if err != nil {
		return nil, err
	}
	sc.curPlays = nil
	return msg(turnText(turn) + "\n" + sc.game.ToDisplayText()), nil
}

func turnText(turn *game.Turn) string {
	s := fmt.Sprintf("%v played %v", turn.Name, turn.Move.ShortDescription())
	if turn.Move.Action() == move.MoveTypePlace {
		s += fmt.Sprintf(" (%v) for %d points", move.WordsString(turn.Move.Words()), turn.Points)
		if turn.Bingo {
			s += ", bingo!"
		}
	}
	return s + fmt.Sprintf(". Score: %d", turn.Total)
}

// place commits a placement, either written out or picked by number from
// the last gen.
func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#") {
		playID, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil {
			return nil, err
		}
		idx := playID - 1
		if idx < 0 || idx > len(sc.curPlays)-1 {
			return nil, errors.New("play outside range")
		}
		return sc.commit(sc.curPlays[idx])
	}
	m, err := move.ParseMove(append([]string{"PLACE"}, cmd.args...), sc.game.LetterDistribution())
	if err != nil {
		return nil, err
	}
	return sc.commit(m)
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return sc.commit(move.NewPassMove())
}

func (sc *ShellController) exchange(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	m, err := move.ParseMove(append([]string{"EXCHANGE"}, cmd.args...), sc.game.LetterDistribution())
	if err != nil {
		return nil, err
	}
	return sc.commit(m)
}

func (sc *ShellController) finalText() string {
	var out strings.Builder
	out.WriteString("Game over.\n")
	for i := 0; i < sc.game.NumPlayers(); i++ {
		fmt.Fprintf(&out, "%v: %d\n", sc.game.NameFor(i), sc.game.PointsFor(i))
	}
	names := make([]string, 0, 1)
	for _, w := range sc.game.Winners() {
		names = append(names, sc.game.NameFor(w))
	}
	if len(names) == 1 {
		fmt.Fprintf(&out, "Winner: %v\n", names[0])
	} else {
		fmt.Fprintf(&out, "Tie between %v\n", strings.Join(names, ", "))
	}
	return out.String()
}

// turn lets the player on turn choose their own move.
func (sc *ShellController) turn(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	turn, err := sc.game.PlayTurn(context.Background())
	if err != nil {
		return nil, err
	}
	sc.curPlays = nil
	text := turnText(turn) + "\n" + sc.game.ToDisplayText()
	if sc.game.IsOver() {
		text += sc.finalText()
	}
	return msg(text), nil
}

// play runs the game to the end, asking human players for their moves.
func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if sc.l != nil {
		sc.l.SetPrompt("")
		defer sc.l.SetPrompt(prompt)
	}
	for !sc.game.IsOver() {
		turn, err := sc.game.PlayTurn(context.Background())
		if err != nil {
			return nil, err
		}
		sc.showMessage(turnText(turn))
	}
	sc.curPlays = nil
	return msg(sc.game.ToDisplayText() + sc.finalText()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	numGames, threads := 100, 1
	var err error
	if len(cmd.args) > 0 {
		if numGames, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	if len(cmd.args) > 1 {
		if threads, err = strconv.Atoi(cmd.args[1]); err != nil {
			return nil, err
		}
	}
	summary, err := automatic.PlayGames(context.Background(), sc.config, numGames, threads)
	if err != nil {
		return nil, err
	}
	return msg(summary.String()), nil
}

func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	path := sc.config.GetString(config.ConfigAutoplayLog)
	if len(cmd.args) > 0 {
		path = cmd.args[0]
	}
	summary, err := automatic.AnalyzeLogFile(path)
	if err != nil {
		return nil, err
	}
	return msg(summary.String()), nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}
	sc.config.Lock()
	sc.config.Set(cmd.args[0], cmd.args[1])
	sc.config.Unlock()
	sc.static = turnplayer.NewStaticPlayer(sc.config)
	return msg("set " + cmd.args[0] + " to " + cmd.args[1]), nil
}
