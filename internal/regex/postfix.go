package regex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnbalancedParens reports a ')' without a matching '(' or a '('
	// still open at the end of the pattern.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	// ErrMissingOperand reports an operator evaluated with too few
	// fragments on the stack.
	ErrMissingOperand = errors.New("operator is missing an operand")
	// ErrMalformedPostfix reports a postfix stream that did not leave
	// exactly one fragment after evaluation.
	ErrMalformedPostfix = errors.New("malformed postfix expression")
)

// precedence: higher binds tighter. '(' sits below every operator so only
// its matching ')' ever removes it from the stack.
func precedence(op rune) int {
	switch op {
	case closureOp:
		return 3
	case concatOp:
		return 2
	case alternateOp:
		return 1
	default:
		return 0
	}
}

func isOperator(r rune) bool {
	return r == closureOp || r == concatOp || r == alternateOp
}

// ToPostfix converts a normalized infix pattern to postfix notation with the
// shunting-yard algorithm restricted to the three regex operators. Operators
// are left-associative: equal precedence on top of the stack pops before the
// incoming operator is pushed.
func ToPostfix(pattern string) (string, error) {
	var out strings.Builder
	var ops []rune

	for _, c := range pattern {
		switch {
		case c == lparen:
			ops = append(ops, c)
		case c == rparen:
			for {
				if len(ops) == 0 {
					return "", fmt.Errorf("unexpected ')': %w", ErrUnbalancedParens)
				}
				op := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if op == lparen {
					break
				}
				out.WriteRune(op)
			}
		case isOperator(c):
			for len(ops) > 0 && precedence(ops[len(ops)-1]) >= precedence(c) {
				out.WriteRune(ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, c)
		default:
			out.WriteRune(c)
		}
	}

	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i] == lparen {
			return "", fmt.Errorf("missing ')': %w", ErrUnbalancedParens)
		}
		out.WriteRune(ops[i])
	}
	return out.String(), nil
}
