package automaton

import "fmt"

// Fragment is a partially built automaton: exactly one entry and exactly one
// accepting state, both arena indices. Every composition rule below relies on
// the exit being singular to know "the" accepting state of an operand.
type Fragment struct {
	Start  StateID
	Accept StateID
}

// Builder accumulates states and the alphabet while a postfix stream is
// evaluated. All fragments share one arena; composing fragments adds states
// and edges but never copies an operand's states.
type Builder struct {
	graph    *Graph
	alphabet map[rune]struct{}
}

func NewBuilder() *Builder {
	return &Builder{graph: NewGraph(), alphabet: map[rune]struct{}{}}
}

func (b *Builder) Graph() *Graph { return b.graph }

// Symbol builds the two-state fragment for a single literal: a fresh initial
// state with one sym-transition to a fresh accepting state.
func (b *Builder) Symbol(sym rune) Fragment {
	start := b.graph.NewState(fmt.Sprintf("initial_%c", sym))
	accept := b.graph.NewState(fmt.Sprintf("accepting_%c", sym))
	b.graph.AddTransition(start, sym, accept)
	b.alphabet[sym] = struct{}{}
	return Fragment{Start: start, Accept: accept}
}

// Concat wires first's accepting state to second's initial state with an
// epsilon edge. The result reuses first's entry and second's exit; no new
// states are allocated.
func (b *Builder) Concat(first, second Fragment) Fragment {
	b.graph.AddEpsilon(first.Accept, second.Start)
	return Fragment{Start: first.Start, Accept: second.Accept}
}

// Alternate builds first|second: a fresh initial state branches into both
// operands, and both operand exits converge on a fresh accepting state.
func (b *Builder) Alternate(first, second Fragment) Fragment {
	start := b.graph.NewState("initial_union")
	accept := b.graph.NewState("accepting_union")
	b.graph.AddEpsilon(start, first.Start)
	b.graph.AddEpsilon(start, second.Start)
	b.graph.AddEpsilon(first.Accept, accept)
	b.graph.AddEpsilon(second.Accept, accept)
	return Fragment{Start: start, Accept: accept}
}

// Star builds the Kleene closure of f. The back edge from f's exit to f's
// entry is what introduces epsilon cycles into the graph.
func (b *Builder) Star(f Fragment) Fragment {
	start := b.graph.NewState("initial_closure")
	accept := b.graph.NewState("accepting_closure")
	b.graph.AddEpsilon(start, f.Start)
	b.graph.AddEpsilon(start, accept)
	b.graph.AddEpsilon(f.Accept, f.Start)
	b.graph.AddEpsilon(f.Accept, accept)
	return Fragment{Start: start, Accept: accept}
}

// Finish seals the final fragment into an NFA.
func (b *Builder) Finish(f Fragment) *NFA {
	alphabet := make([]rune, 0, len(b.alphabet))
	for r := range b.alphabet {
		alphabet = append(alphabet, r)
	}
	return NewNFA(b.graph, alphabet, f.Start, []StateID{f.Accept})
}
