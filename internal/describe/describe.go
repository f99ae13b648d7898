// Package describe turns external automaton descriptions into in-memory
// state graphs. A description is a plain record: state identifiers, alphabet
// symbols, transition triples, one initial state and a set of accepting
// states. The engine does not care where the record came from; JSON, YAML
// and the textual DSL all decode into the same Description.
package describe

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"refa/internal/automaton"
)

// EpsilonToken is the reserved symbol marking an epsilon edge in a
// transition record. It is never a literal alphabet symbol.
const EpsilonToken = "EPS"

var (
	ErrUnknownState     = errors.New("reference to undeclared state")
	ErrBadSymbol        = errors.New("symbol must be a single character")
	ErrNoInitial        = errors.New("no initial state")
	ErrNondeterministic = errors.New("description is not deterministic")
)

// Transition is one edge record of a description.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Description is the external automaton record consumed by the loaders.
type Description struct {
	States          []string     `json:"states" yaml:"states"`
	Alphabet        []string     `json:"alphabet" yaml:"alphabet"`
	Transitions     []Transition `json:"transitions" yaml:"transitions"`
	InitialState    string       `json:"initial_state" yaml:"initial_state"`
	AcceptingStates []string     `json:"accepting_states" yaml:"accepting_states"`
	Deterministic   bool         `json:"deterministic,omitempty" yaml:"deterministic,omitempty"`
}

func (d *Description) validate() error {
	declared := make(map[string]struct{}, len(d.States))
	for _, s := range d.States {
		declared[s] = struct{}{}
	}
	if d.InitialState == "" {
		return ErrNoInitial
	}
	if _, ok := declared[d.InitialState]; !ok {
		return fmt.Errorf("initial state %q: %w", d.InitialState, ErrUnknownState)
	}
	for _, s := range d.AcceptingStates {
		if _, ok := declared[s]; !ok {
			return fmt.Errorf("accepting state %q: %w", s, ErrUnknownState)
		}
	}
	for _, sym := range d.Alphabet {
		if sym == EpsilonToken {
			return fmt.Errorf("%q is reserved for epsilon edges: %w", EpsilonToken, ErrBadSymbol)
		}
	}
	for _, t := range d.Transitions {
		if _, ok := declared[t.From]; !ok {
			return fmt.Errorf("transition from %q: %w", t.From, ErrUnknownState)
		}
		if _, ok := declared[t.To]; !ok {
			return fmt.Errorf("transition to %q: %w", t.To, ErrUnknownState)
		}
	}
	return nil
}

func symbolRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%q: %w", s, ErrBadSymbol)
	}
	return r, nil
}

// NFA builds the nondeterministic automaton the description denotes.
func (d *Description) NFA() (*automaton.NFA, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	g := automaton.NewGraph()
	ids := make(map[string]automaton.StateID, len(d.States))
	for _, label := range d.States {
		ids[label] = g.NewState(label)
	}

	alphabet := make([]rune, 0, len(d.Alphabet))
	for _, s := range d.Alphabet {
		r, err := symbolRune(s)
		if err != nil {
			return nil, err
		}
		alphabet = append(alphabet, r)
	}

	for _, t := range d.Transitions {
		if t.Symbol == EpsilonToken {
			g.AddEpsilon(ids[t.From], ids[t.To])
			continue
		}
		r, err := symbolRune(t.Symbol)
		if err != nil {
			return nil, err
		}
		g.AddTransition(ids[t.From], r, ids[t.To])
	}

	accepting := make([]automaton.StateID, 0, len(d.AcceptingStates))
	for _, label := range d.AcceptingStates {
		accepting = append(accepting, ids[label])
	}

	return automaton.NewNFA(g, alphabet, ids[d.InitialState], accepting), nil
}

// DFA builds the deterministic table-walker. Epsilon records and a second
// target for the same (state, symbol) pair are rejected.
func (d *Description) DFA() (*automaton.DFA, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	trans := make(map[string]map[rune]string, len(d.States))
	for _, s := range d.States {
		trans[s] = map[rune]string{}
	}
	for _, t := range d.Transitions {
		if t.Symbol == EpsilonToken {
			return nil, fmt.Errorf("epsilon edge %s -> %s: %w", t.From, t.To, ErrNondeterministic)
		}
		r, err := symbolRune(t.Symbol)
		if err != nil {
			return nil, err
		}
		if prev, ok := trans[t.From][r]; ok && prev != t.To {
			return nil, fmt.Errorf("two targets for (%s, %q): %w", t.From, t.Symbol, ErrNondeterministic)
		}
		trans[t.From][r] = t.To
	}

	accepting := make(map[string]struct{}, len(d.AcceptingStates))
	for _, s := range d.AcceptingStates {
		accepting[s] = struct{}{}
	}

	return &automaton.DFA{
		States:    append([]string(nil), d.States...),
		Trans:     trans,
		Start:     d.InitialState,
		Accepting: accepting,
	}, nil
}
