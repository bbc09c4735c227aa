package shell

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/lexigrid/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"new": {
		Options: []string{"-human"},
	},
	"place": {
		Args: []string{"-", "|"},
	},
	"help": {
		Args: []string{"place", "autoplay", "new"},
	},
	"setconfig": {
		Args: []string{
			config.ConfigBoardPath, config.ConfigLexiconPath, config.ConfigLexiconEncoding,
			config.ConfigLetterDistributionPath, config.ConfigRackSize,
			config.ConfigBingoBonus, config.ConfigMovegenThreads, config.ConfigSeed,
			config.ConfigAutoplayLog,
		},
	},
}

var commandNames = []string{
	"help", "new", "rack", "gen", "anchors", "place", "pass", "exchange",
	"board", "turn", "play", "autoplay", "analyze", "setconfig", "exit",
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// Unbalanced quotes while typing.
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		// Only the first argument is completed.
		argIdx := len(fields) - 1
		if endsWithSpace {
			argIdx = len(fields)
		}
		if metadata, exists := commandMetadata[cmdName]; exists {
			switch {
			case strings.HasPrefix(prefix, "-") && len(metadata.Options) > 0:
				completions = metadata.Options
			case argIdx == 1 && len(metadata.Args) > 0:
				completions = metadata.Args
			default:
				completions = metadata.Options
			}
		}
		if cmdName == "place" && argIdx == 1 && c.sc.curPlays != nil {
			for i := range c.sc.curPlays {
				completions = append(completions, "#"+strconv.Itoa(i+1))
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
