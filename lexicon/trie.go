package lexicon

import (
	"sort"
	"strings"
)

// NodeIdx is a handle to a node in a Trie.
type NodeIdx uint32

// Edge is a labelled arc from a node to one of its children.
type Edge struct {
	Letter rune
	Child  NodeIdx
}

type node struct {
	// edges are kept sorted by letter.
	edges []Edge
	final bool
}

// A Trie is a prefix tree of words. Nodes live in a single arena and are
// addressed by index; every node has exactly one parent. A Trie is
// read-only once loaded and then safe for concurrent use.
type Trie struct {
	name     string
	nodes    []node
	numWords int
}

// NewTrie creates an empty trie.
func NewTrie(name string) *Trie {
	return &Trie{name: name, nodes: []node{{}}}
}

func (t *Trie) Name() string {
	return t.name
}

func (t *Trie) NumWords() int {
	return t.numWords
}

func (t *Trie) Root() NodeIdx {
	return 0
}

// AddWord inserts a word, upper-casing it first.
func (t *Trie) AddWord(w string) {
	n := t.Root()
	for _, l := range strings.ToUpper(w) {
		c, ok := t.Child(n, l)
		if !ok {
			c = NodeIdx(len(t.nodes))
			t.nodes = append(t.nodes, node{})
			edges := t.nodes[n].edges
			i := sort.Search(len(edges), func(i int) bool { return edges[i].Letter >= l })
			edges = append(edges, Edge{})
			copy(edges[i+1:], edges[i:])
			edges[i] = Edge{Letter: l, Child: c}
			t.nodes[n].edges = edges
		}
		n = c
	}
	if !t.nodes[n].final {
		t.nodes[n].final = true
		t.numWords++
	}
}

// Child follows the edge labelled l out of n.
func (t *Trie) Child(n NodeIdx, l rune) (NodeIdx, bool) {
	edges := t.nodes[n].edges
	i := sort.Search(len(edges), func(i int) bool { return edges[i].Letter >= l })
	if i < len(edges) && edges[i].Letter == l {
		return edges[i].Child, true
	}
	return 0, false
}

// Edges returns the arcs out of n in letter order. The slice must not be
// modified.
func (t *Trie) Edges(n NodeIdx) []Edge {
	return t.nodes[n].edges
}

// IsFinal is true if the path from the root to n spells a word.
func (t *Trie) IsFinal(n NodeIdx) bool {
	return t.nodes[n].final
}

// FindPrefix walks the trie along p and returns the node reached, or false
// the moment a letter has no child.
func (t *Trie) FindPrefix(p string) (NodeIdx, bool) {
	n := t.Root()
	for _, l := range p {
		c, ok := t.Child(n, l)
		if !ok {
			return 0, false
		}
		n = c
	}
	return n, true
}

func (t *Trie) IsWord(w string) bool {
	n, ok := t.FindPrefix(w)
	return ok && t.IsFinal(n)
}

// NextLetters returns the letters that can follow prefix.
func (t *Trie) NextLetters(prefix string) []rune {
	n, ok := t.FindPrefix(prefix)
	if !ok {
		return nil
	}
	letters := make([]rune, len(t.nodes[n].edges))
	for i, e := range t.nodes[n].edges {
		letters[i] = e.Letter
	}
	return letters
}
