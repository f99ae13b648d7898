package automaton

import (
	"fmt"
	"io"
	"sort"
)

// ExportDOT writes a Graphviz rendering of an NFA or DFA to w.
func ExportDOT(w io.Writer, a Acceptor) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch t := a.(type) {

	case *NFA:
		g := t.graph
		for id := 0; id < g.Len(); id++ {
			s := g.State(StateID(id))
			shape := "circle"
			if t.accepting.Contains(s.ID) {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    n%d [shape=%s,label=%q];\n", s.ID, shape, s.Label)
			for _, sym := range sortedSymbols(s.Transitions) {
				for _, to := range s.Transitions[sym] {
					fmt.Fprintf(w, "    n%d -> n%d [label=\"%c\"];\n", s.ID, to, sym)
				}
			}
			for _, to := range s.Epsilon {
				fmt.Fprintf(w, "    n%d -> n%d [label=\"ε\"];\n", s.ID, to)
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", t.start)

	case *DFA:
		for _, name := range t.States {
			shape := "circle"
			if _, ok := t.Accepting[name]; ok {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    %q [shape=%s];\n", name, shape)
			for _, sym := range sortedSymbols(t.Trans[name]) {
				fmt.Fprintf(w, "    %q -> %q [label=\"%c\"];\n", name, t.Trans[name][sym], sym)
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> %q;\n", t.Start)

	default:
		fmt.Fprintln(w, "    /* unknown graph type */")
	}

	fmt.Fprintln(w, "}")
}

func sortedSymbols[V any](m map[rune]V) []rune {
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
