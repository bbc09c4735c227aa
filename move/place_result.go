package move

// PlaceResult is the outcome of trying a placement against a board. An
// invalid result carries the reason; a valid one carries the words formed
// and the points scored.
type PlaceResult struct {
	Valid  bool
	Err    string
	Words  []string
	Points int
}

func NewInvalidResult(reason string) PlaceResult {
	return PlaceResult{Err: reason}
}

func NewValidResult(words []string, points int) PlaceResult {
	return PlaceResult{Valid: true, Words: words, Points: points}
}
