package shunting

import (
	"strconv"
)

// EvalString compiles an infix expression and evaluates it. It is safe to
// call concurrently.
func EvalString(s string) (float64, error) {
	rpn, err := Compile(s)
	if err != nil {
		return 0, err
	}
	return rpn.Eval()
}

// Eval evaluates r in float64 arithmetic. Numbers are pushed to a stack;
// each operator pops its right operand, then its left, and pushes the result.
// Exactly one value must remain at the end.
func (r RPN) Eval() (float64, error) {
	stack := make([]float64, 0, len(r)/2+1)
	for _, tok := range r {
		if IsNumber(tok.Text) {
			// IsNumber accepts only text that ParseFloat accepts, so the only
			// possible error is a range error, and then v is ±Inf.
			v, _ := strconv.ParseFloat(tok.Text, 64)
			stack = append(stack, v)
			continue
		}
		if _, ok := Lookup(tok.Text); !ok {
			return 0, &OperatorError{Col: tok.Pos, Operator: tok.Text}
		}
		if len(stack) < 2 {
			return 0, &OperandError{Col: tok.Pos, Operator: tok.Text, Have: len(stack)}
		}
		y := stack[len(stack)-1]
		x := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		v, err := Apply(tok.Text, x, y)
		if err != nil {
			if err, ok := err.(*DivisionByZeroError); ok {
				err.Col = tok.Pos
			}
			return 0, err
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		return 0, &StackError{Len: len(stack)}
	}
	return stack[0], nil
}
