package game

import (
	"fmt"
	"sort"
	"strings"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := []rune(s)
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

// addText writes text to the right of the board, starting at row. It
// returns the lines, grown if the text runs past the bottom.
func addText(lines []string, row int, hpad int, text string) []string {
	maxTextSize := 42
	for _, chunk := range splitSubN(text, maxTextSize) {
		for row >= len(lines) {
			lines = append(lines, "")
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
	return lines
}

func turnSummary(t Turn) string {
	if t.Move == nil {
		return ""
	}
	s := fmt.Sprintf("%s played %s", t.Name, t.Move.ShortDescription())
	if t.Points != 0 {
		s += fmt.Sprintf(" for %d", t.Points)
	}
	if t.Bingo {
		s += " (bingo)"
	}
	return s + fmt.Sprintf(", total %d", t.Total)
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board with the scores, what is unseen by the player on
// turn, and the last move next to it.
func (g *Game) ToDisplayText() string {
	bts := strings.Split(strings.TrimRight(g.board.ToDisplayText(), "\n"), "\n")
	hpadding := 3
	vpadding := 1
	bagColCount := 20

	onturn := g.PlayerOnTurn()
	for pi, p := range g.players {
		bts = addText(bts, vpadding+pi, hpadding,
			p.stateString(!g.IsOver() && onturn == pi))
	}
	vpadding += len(g.players) + 1

	unseen := g.bag.Peek()
	for pi, p := range g.players {
		if pi != onturn {
			unseen = append(unseen, p.rack.TilesOn()...)
		}
	}
	sort.Slice(unseen, func(i, j int) bool {
		if unseen[i].IsBlank() != unseen[j].IsBlank() {
			return !unseen[i].IsBlank()
		}
		return unseen[i].Letter < unseen[j].Letter
	})
	bts = addText(bts, vpadding, hpadding, fmt.Sprintf("Bag + unseen: (%d)", len(unseen)))
	vpadding++

	for i := 0; i < len(unseen); i += bagColCount {
		end := min(i+bagColCount, len(unseen))
		letters := make([]string, 0, end-i)
		for _, t := range unseen[i:end] {
			letters = append(letters, t.String())
		}
		bts = addText(bts, vpadding, hpadding, strings.Join(letters, " "))
		vpadding++
	}
	vpadding++

	bts = addText(bts, vpadding, hpadding, fmt.Sprintf("Turn %d:", g.board.MoveIndex()))
	vpadding++
	if len(g.history) > 0 {
		bts = addText(bts, vpadding, hpadding, turnSummary(g.history[len(g.history)-1]))
		vpadding++
	}
	if g.IsOver() {
		bts = addText(bts, vpadding+1, hpadding, "Game is over.")
	}
	return strings.Join(bts, "\n") + "\n"
}
