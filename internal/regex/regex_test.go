package regex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refa/internal/automaton"
)

// ------------------------------------------------------------------ helpers

func mustCompile(t *testing.T, pattern string) *automaton.NFA {
	t.Helper()
	nfa, err := Compile(pattern)
	require.NoError(t, err, "compile %q", pattern)
	return nfa
}

// wordsUpTo enumerates every string over alphabet with length at most n.
func wordsUpTo(alphabet string, n int) []string {
	words := []string{""}
	prev := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range prev {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		words = append(words, next...)
		prev = next
	}
	return words
}

// -------------------------------------------------------------- normalizer

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"a", "a"},
		{"ab", "a.b"},
		{"a|b", "a|b"},
		{"ab*", "a.b*"},
		{"a(a|b)*b", "a.(a|b)*.b"},
		{"(ab)(ab)", "(a.b).(a.b)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "normalize %q", c.in)
	}
}

// ------------------------------------------------------------ shunting-yard

func TestToPostfix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"a", "a"},
		{"a.a.b", "aa.b."},
		{"a|b*", "ab*|"},
		{"a.b|c", "ab.c|"},
		{"a|b|c", "ab|c|"},
		{"a.(a|b)*.b", "aab|*.b."},
	}
	for _, c := range cases {
		got, err := ToPostfix(c.in)
		require.NoError(t, err, "postfix %q", c.in)
		assert.Equal(t, c.want, got, "postfix %q", c.in)
	}
}

func TestToPostfixUnbalanced(t *testing.T) {
	for _, in := range []string{")", "a.b)", "(", "(a.b", "((a)"} {
		_, err := ToPostfix(in)
		require.ErrorIs(t, err, ErrUnbalancedParens, "input %q", in)
	}
}

// ---------------------------------------------------------------- compiler

func TestCompileScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"ab", []string{"ab"}, []string{"", "a", "b", "ba"}},
		{"a|b", []string{"a", "b"}, []string{"", "ab"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"ab*", []string{"a", "ab", "abbb"}, []string{"b", "ba"}},
		{"a(a|b)*b", []string{"ab", "aab", "abab", "abbbb"}, []string{"", "a", "b", "ba", "aba"}},
		{"(a|b)*", []string{"", "a", "b", "abba"}, []string{"c", "ac"}},
	}
	for _, c := range cases {
		nfa := mustCompile(t, c.pattern)
		for _, in := range c.accept {
			assert.True(t, nfa.Accepts(in), "%q should accept %q", c.pattern, in)
		}
		for _, in := range c.reject {
			assert.False(t, nfa.Accepts(in), "%q should reject %q", c.pattern, in)
		}
	}
}

func TestCompilePostfixErrors(t *testing.T) {
	for _, in := range []string{"", "ab", "abc", "ab*"} {
		_, err := CompilePostfix(in)
		require.ErrorIs(t, err, ErrMalformedPostfix, "postfix %q", in)
	}
	for _, in := range []string{"*", "a.", "a|", ".", "a*.b"} {
		_, err := CompilePostfix(in)
		require.ErrorIs(t, err, ErrMissingOperand, "postfix %q", in)
	}
}

func TestRecompileSameLanguage(t *testing.T) {
	first := mustCompile(t, "a(a|b)*b")
	second := mustCompile(t, "a(a|b)*b")
	for _, w := range wordsUpTo("ab", 4) {
		assert.Equal(t, first.Accepts(w), second.Accepts(w), "word %q", w)
	}
}

// ----------------------------------------------------------- operator laws

func TestConcatenationLaw(t *testing.T) {
	na := mustCompile(t, "a|ab")
	nb := mustCompile(t, "b*a")
	nab := mustCompile(t, "(a|ab)(b*a)")
	for _, w := range wordsUpTo("ab", 5) {
		want := false
		for i := 0; i <= len(w); i++ {
			if na.Accepts(w[:i]) && nb.Accepts(w[i:]) {
				want = true
				break
			}
		}
		assert.Equal(t, want, nab.Accepts(w), "word %q", w)
	}
}

func TestAlternationLaw(t *testing.T) {
	na := mustCompile(t, "ab*")
	nb := mustCompile(t, "ba*")
	nu := mustCompile(t, "(ab*)|(ba*)")
	for _, w := range wordsUpTo("ab", 5) {
		assert.Equal(t, na.Accepts(w) || nb.Accepts(w), nu.Accepts(w), "word %q", w)
	}
}

func TestClosureLaw(t *testing.T) {
	base := mustCompile(t, "ab|a")
	star := mustCompile(t, "(ab|a)*")
	for _, w := range wordsUpTo("ab", 5) {
		assert.Equal(t, decomposes(base, w), star.Accepts(w), "word %q", w)
	}
}

// decomposes reports whether w splits into zero or more consecutive
// substrings each accepted by acc.
func decomposes(acc automaton.Acceptor, w string) bool {
	ok := make([]bool, len(w)+1)
	ok[0] = true
	for i := 1; i <= len(w); i++ {
		for j := 0; j < i; j++ {
			if ok[j] && acc.Accepts(w[j:i]) {
				ok[i] = true
				break
			}
		}
	}
	return ok[len(w)]
}

// ---------------------------------------------------------------- bench

func BenchmarkMatchLongInput(b *testing.B) {
	nfa, err := Compile("a(a|b)*b")
	if err != nil {
		b.Fatal(err)
	}
	input := strings.Repeat("ab", 50_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nfa.Accepts(input)
	}
}
