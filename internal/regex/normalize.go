package regex

import "strings"

// Regex metacharacters. Everything else is a literal symbol; there is no
// escape mechanism.
const (
	lparen      = '('
	rparen      = ')'
	concatOp    = '.'
	alternateOp = '|'
	closureOp   = '*'
)

// Normalize makes the implicit concatenation of adjacent tokens explicit by
// inserting the '.' operator between a token that can end an operand and a
// token that can start one.
func Normalize(pattern string) string {
	runes := []rune(pattern)
	var out strings.Builder
	out.Grow(2 * len(pattern))
	for i, a := range runes {
		out.WriteRune(a)
		if i+1 < len(runes) && shouldConcat(a, runes[i+1]) {
			out.WriteRune(concatOp)
		}
	}
	return out.String()
}

func shouldConcat(a, b rune) bool {
	return a != lparen && b != rparen && a != alternateOp &&
		b != closureOp && b != alternateOp
}
