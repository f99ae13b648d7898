package automaton

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDFAAccepts(t *testing.T) {
	// even number of a's
	d := &DFA{
		States: []string{"even", "odd"},
		Trans: map[string]map[rune]string{
			"even": {'a': "odd"},
			"odd":  {'a': "even"},
		},
		Start:     "even",
		Accepting: map[string]struct{}{"even": {}},
	}

	assert.True(t, d.Accepts(""))
	assert.False(t, d.Accepts("a"))
	assert.True(t, d.Accepts("aa"))
	assert.False(t, d.Accepts("aaa"))
	// missing transition rejects
	assert.False(t, d.Accepts("b"))
}

func TestExportDOT(t *testing.T) {
	b := NewBuilder()
	nfa := b.Finish(b.Symbol('a'))

	var buf bytes.Buffer
	ExportDOT(&buf, nfa)
	out := buf.String()
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, "doublecircle")
	assert.Contains(t, out, "label=\"a\"")
}
