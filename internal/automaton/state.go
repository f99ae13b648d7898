package automaton

import "fmt"

// StateID addresses a state inside a Graph arena.
type StateID int

// State is a single automaton node. Transitions maps a symbol to the set of
// target states (several targets on the same symbol are allowed, that is the
// nondeterminism); Epsilon lists the targets reachable without consuming
// input, in insertion order.
type State struct {
	ID          StateID
	Label       string
	Transitions map[rune][]StateID
	Epsilon     []StateID
}

// Graph is the arena every state lives in. Fragments and automatons refer to
// states by index only, so composition shares nodes instead of copying them.
type Graph struct {
	states []*State
}

func NewGraph() *Graph { return &Graph{} }

// NewState appends a fresh state to the arena. An empty label defaults to
// q<id>.
func (g *Graph) NewState(label string) StateID {
	id := StateID(len(g.states))
	if label == "" {
		label = fmt.Sprintf("q%d", id)
	}
	g.states = append(g.states, &State{
		ID:          id,
		Label:       label,
		Transitions: map[rune][]StateID{},
	})
	return id
}

func (g *Graph) State(id StateID) *State { return g.states[id] }

func (g *Graph) Len() int { return len(g.states) }

// AddTransition adds a symbol edge, keeping the target set duplicate free.
func (g *Graph) AddTransition(from StateID, sym rune, to StateID) {
	s := g.states[from]
	for _, t := range s.Transitions[sym] {
		if t == to {
			return
		}
	}
	s.Transitions[sym] = append(s.Transitions[sym], to)
}

// AddEpsilon appends an epsilon edge.
func (g *Graph) AddEpsilon(from, to StateID) {
	s := g.states[from]
	s.Epsilon = append(s.Epsilon, to)
}
