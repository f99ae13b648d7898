package automaton

import "sort"

// Acceptor is the one capability shared by both automaton variants: decide
// whether an input string belongs to the automaton's language.
type Acceptor interface {
	Accepts(input string) bool
}

var _ Acceptor = (*NFA)(nil)

// NFA is a nondeterministic finite automaton over a state arena: a finite
// alphabet, one initial state, a set of accepting states and a closure table
// precomputed once at construction. The structure is read-only after NewNFA
// returns, so a single NFA may serve concurrent Accepts calls.
type NFA struct {
	graph     *Graph
	alphabet  map[rune]struct{}
	start     StateID
	accepting StateSet
	closures  []StateSet
}

// NewNFA seals a state graph into an automaton. Epsilon closures are
// computed here, exactly once; they are never recomputed.
func NewNFA(g *Graph, alphabet []rune, start StateID, accepting []StateID) *NFA {
	alpha := make(map[rune]struct{}, len(alphabet))
	for _, r := range alphabet {
		alpha[r] = struct{}{}
	}
	return &NFA{
		graph:     g,
		alphabet:  alpha,
		start:     start,
		accepting: NewStateSet(accepting...),
		closures:  epsilonClosures(g),
	}
}

func (n *NFA) Graph() *Graph { return n.graph }

func (n *NFA) Start() StateID { return n.start }

// Closure returns the precomputed epsilon closure of a state.
func (n *NFA) Closure(id StateID) StateSet { return n.closures[id] }

func (n *NFA) Alphabet() []rune {
	out := make([]rune, 0, len(n.alphabet))
	for r := range n.alphabet {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Accepts runs the multi-state simulation. Each step folds the epsilon
// closure of the current frontier before taking symbol transitions; an empty
// frontier can never recover, so the loop exits early. After the last symbol
// the frontier is closed one final time: a trailing epsilon path into an
// accepting state still counts as acceptance.
func (n *NFA) Accepts(input string) bool {
	current := NewStateSet(n.start)

	for _, sym := range input {
		next := StateSet{}
		for id := range current {
			for c := range n.closures[id] {
				for _, to := range n.graph.State(c).Transitions[sym] {
					next.Add(to)
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}

	final := StateSet{}
	for id := range current {
		final.AddAll(n.closures[id])
	}
	return final.Intersects(n.accepting)
}
