package regex

import (
	"fmt"

	"refa/internal/automaton"
)

// CompilePostfix evaluates a postfix stream with an explicit fragment stack
// (Thompson's construction). Binary operators pop the second operand first,
// so push order is preserved: for "AB.", A is the first operand. The stream
// is malformed unless every operator finds its operands and exactly one
// fragment remains at the end; no automaton is returned otherwise.
func CompilePostfix(postfix string) (*automaton.NFA, error) {
	b := automaton.NewBuilder()
	var stack []automaton.Fragment

	pop := func() (automaton.Fragment, bool) {
		if len(stack) == 0 {
			return automaton.Fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, c := range postfix {
		switch c {
		case concatOp, alternateOp:
			second, ok := pop()
			first, ok2 := pop()
			if !ok || !ok2 {
				return nil, fmt.Errorf("%q: %w", c, ErrMissingOperand)
			}
			if c == concatOp {
				stack = append(stack, b.Concat(first, second))
			} else {
				stack = append(stack, b.Alternate(first, second))
			}
		case closureOp:
			f, ok := pop()
			if !ok {
				return nil, fmt.Errorf("%q: %w", c, ErrMissingOperand)
			}
			stack = append(stack, b.Star(f))
		default:
			stack = append(stack, b.Symbol(c))
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%d fragments left on the stack: %w", len(stack), ErrMalformedPostfix)
	}
	return b.Finish(stack[0]), nil
}

// Compile runs the whole front-end: concatenation normalization, infix to
// postfix conversion, postfix evaluation.
func Compile(pattern string) (*automaton.NFA, error) {
	postfix, err := ToPostfix(Normalize(pattern))
	if err != nil {
		return nil, err
	}
	return CompilePostfix(postfix)
}
