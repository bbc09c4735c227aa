package lexicon

// Lexicon is anything that can tell whether a word is valid. Words are
// upper-case.
type Lexicon interface {
	Name() string
	IsWord(word string) bool
}

// AcceptAll accepts every word. It is handy for scoring positions
// without caring about validity.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) IsWord(word string) bool {
	return true
}
