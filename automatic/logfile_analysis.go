package automatic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gopkg.in/yaml.v3"

	"github.com/domino14/lexigrid/stats"
)

// Confidence is the confidence level, in percent, of the interval
// reported around the first player's mean spread.
const Confidence = 95.0

const histogramBins = 15

// Summary accumulates the results of many games.
type Summary struct {
	Games int
	// Wins counts half a win for each player on a tie.
	Wins          map[string]float64
	WentFirst     map[string]int
	WentFirstWins float64
	Scores        map[string]*stats.Statistic
	// FirstSpread is the spread of whoever went first, in two player
	// games.
	FirstSpread stats.Statistic

	allScores map[string][]float64
}

func NewSummary() *Summary {
	return &Summary{
		Wins:      map[string]float64{},
		WentFirst: map[string]int{},
		Scores:    map[string]*stats.Statistic{},
		allScores: map[string][]float64{},
	}
}

// Add records the outcome of one game.
func (s *Summary) Add(res *GameResult) {
	if len(res.Players) == 0 {
		return
	}
	s.Games++
	best := res.Scores[0]
	for _, sc := range res.Scores {
		best = max(best, sc)
	}
	var winners []string
	for i, name := range res.Players {
		if res.Scores[i] == best {
			winners = append(winners, name)
		}
		st, ok := s.Scores[name]
		if !ok {
			st = &stats.Statistic{}
			s.Scores[name] = st
		}
		st.Push(float64(res.Scores[i]))
		s.allScores[name] = append(s.allScores[name], float64(res.Scores[i]))
	}
	share := 1.0 / float64(len(winners))
	for _, w := range winners {
		s.Wins[w] += share
		if w == res.Players[0] {
			s.WentFirstWins += share
		}
	}
	s.WentFirst[res.Players[0]]++
	if len(res.Players) == 2 {
		s.FirstSpread.Push(float64(res.Scores[0] - res.Scores[1]))
	}
}

// Merge folds another summary into this one.
func (s *Summary) Merge(o *Summary) {
	s.Games += o.Games
	s.WentFirstWins += o.WentFirstWins
	for name, w := range o.Wins {
		s.Wins[name] += w
	}
	for name, n := range o.WentFirst {
		s.WentFirst[name] += n
	}
	for name, st := range o.Scores {
		if _, ok := s.Scores[name]; !ok {
			s.Scores[name] = &stats.Statistic{}
		}
		s.Scores[name].Merge(st)
		s.allScores[name] = append(s.allScores[name], o.allScores[name]...)
	}
	s.FirstSpread.Merge(&o.FirstSpread)
}

// Players returns every player seen, sorted by name.
func (s *Summary) Players() []string {
	names := make([]string, 0, len(s.Scores))
	for name := range s.Scores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Histogram returns the distribution of the player's final scores.
func (s *Summary) Histogram(player string) histogram.Histogram {
	return histogram.Hist(histogramBins, s.allScores[player])
}

func (s *Summary) String() string {
	var ss strings.Builder
	if s.Games == 0 {
		return "No games played.\n"
	}
	fmt.Fprintf(&ss, "Games played: %d\n", s.Games)
	for _, name := range s.Players() {
		fmt.Fprintf(&ss, "%v wins: %.1f (%.3f%%)\n", name, s.Wins[name],
			100.0*s.Wins[name]/float64(s.Games))
		fmt.Fprintf(&ss, "%v went first: %d (%.3f%%)\n", name, s.WentFirst[name],
			100.0*float64(s.WentFirst[name])/float64(s.Games))
	}
	fmt.Fprintf(&ss, "Player who went first wins: %.1f (%.3f%%)\n",
		s.WentFirstWins, 100.0*s.WentFirstWins/float64(s.Games))
	for _, name := range s.Players() {
		st := s.Scores[name]
		fmt.Fprintf(&ss, "%v Mean Score: %.6f  Stdev: %.6f  Min: %.0f  Max: %.0f\n",
			name, st.Mean(), st.Stdev(), st.Min(), st.Max())
	}
	if s.FirstSpread.Iterations() > 0 {
		lo, hi := s.FirstSpread.ConfidenceInterval(Confidence)
		fmt.Fprintf(&ss, "First player spread: %.3f, %.0f%% CI [%.3f, %.3f]\n",
			s.FirstSpread.Mean(), Confidence, lo, hi)
	}
	for _, name := range s.Players() {
		if st := s.Scores[name]; st.Min() == st.Max() {
			// Nothing to bin.
			continue
		}
		fmt.Fprintf(&ss, "\n%v final scores:\n", name)
		if err := histogram.Fprint(&ss, s.Histogram(name), histogram.Linear(40)); err != nil {
			fmt.Fprintf(&ss, "(cannot draw histogram: %v)\n", err)
		}
	}
	return ss.String()
}

// ReadTurnLogs decodes a stream of TurnLog documents.
func ReadTurnLogs(r io.Reader) ([]TurnLog, error) {
	dec := yaml.NewDecoder(r)
	var logs []TurnLog
	for {
		var tl TurnLog
		err := dec.Decode(&tl)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		logs = append(logs, tl)
	}
	return logs, nil
}

// AnalyzeLogFile reads an autoplay log back and summarizes the games
// that finished in it.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	logs, err := ReadTurnLogs(file)
	if err != nil {
		return nil, fmt.Errorf("reading %v: %w", filepath, err)
	}
	summary := NewSummary()
	for _, tl := range logs {
		if tl.Final != nil {
			summary.Add(tl.Final)
		}
	}
	return summary, nil
}
