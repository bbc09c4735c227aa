// Package shell is the interactive front end: a readline loop that sets
// up games, shows the board, and lets people and the computer move.
package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/config"
	"github.com/domino14/lexigrid/game"
	"github.com/domino14/lexigrid/move"
	"github.com/domino14/lexigrid/turnplayer"
)

const prompt = "\033[31mlexigrid>\033[0m "

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please start a game first with the `new` command")
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l        *readline.Instance
	out      io.Writer
	readLine func() (string, error)

	config   *config.Config
	execPath string

	game     *game.Game
	humans   map[string]bool
	static   *turnplayer.StaticPlayer
	curPlays []*move.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController sets up the readline instance. execPath is where
// the binary lives.
func NewShellController(cfg *config.Config, execPath string) *ShellController {
	sc := newController(cfg, nil, nil)
	sc.execPath = execPath
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "/tmp/lexigrid_readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	sc.readLine = l.Readline
	return sc
}

func newController(cfg *config.Config, readLine func() (string, error), out io.Writer) *ShellController {
	return &ShellController{
		config:   cfg,
		readLine: readLine,
		out:      out,
		static:   turnplayer.NewStaticPlayer(cfg),
		humans:   map[string]bool{},
	}
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) StringArray(key string) []string {
	return c[key]
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields splits a command line into the command, its positional
// arguments and its -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		// A lone "-" is the across direction, not an option.
		if strings.HasPrefix(f, "-") && len(f) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := f[1:]
			cmd.options[key] = append(cmd.options[key], fields[i+1])
			i++
			continue
		}
		cmd.args = append(cmd.args, f)
	}
	return cmd, nil
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "rack":
		return sc.rack(cmd)
	case "gen":
		return sc.generate(cmd)
	case "anchors":
		return sc.anchors(cmd)
	case "place":
		return sc.place(cmd)
	case "pass":
		return sc.pass(cmd)
	case "exchange":
		return sc.exchange(cmd)
	case "board", "s":
		return sc.show(cmd)
	case "turn":
		return sc.turn(cmd)
	case "play":
		return sc.play(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "analyze":
		return sc.analyze(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	default:
		log.Debug().Str("cmd", cmd.cmd).Msg("command not found")
		return nil, errors.New("command " + cmd.cmd + " not found")
	}
}

// Execute runs one command line and prints its response.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if line == "exit" {
		sig <- syscall.SIGINT
		return
	}
	resp, err := sc.handle(line)
	if err != nil {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	if sc.l != nil {
		defer sc.l.Close()
	}
	for {
		line, err := sc.readLine()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		sc.Execute(sig, line)
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// lineReader turns the shell's line source into an io.Reader, so a
// human player can read moves from the same terminal.
type lineReader struct {
	readLine func() (string, error)
	buf      []byte
}

func (r *lineReader) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		line, err := r.readLine()
		if err == readline.ErrInterrupt {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		r.buf = []byte(line + "\n")
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
