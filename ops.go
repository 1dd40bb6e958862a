package shunting

import (
	"math"
	"strconv"
)

// Assoc is the grouping direction of an operator among others of equal
// precedence.
type Assoc int8

const (
	// Left groups left to right: a-b-c is (a-b)-c.
	Left Assoc = iota
	// Right groups right to left: a^b^c is a^(b^c).
	Right
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "Assoc(" + strconv.Itoa(int(a)) + ")"
	}
}

// Operator describes a binary operator.
type Operator struct {
	// Symbol is the operator's text in an expression.
	Symbol string
	// Prec is the operator's precedence. Higher binds tighter.
	Prec int
	// Assoc is the operator's associativity.
	Assoc Assoc
}

// Operators contains the symbols of all binary operators.
const Operators = "+-*/^"

var optable = [...]Operator{
	{"^", 3, Right},
	{"*", 2, Left},
	{"/", 2, Left},
	{"+", 1, Left},
	{"-", 1, Left},
}

// Lookup returns the description of the operator with the given symbol.
func Lookup(symbol string) (Operator, bool) {
	for _, op := range optable {
		if op.Symbol == symbol {
			return op, true
		}
	}
	return Operator{}, false
}

// yields reports whether top, an operator already on the stack, must be
// output before pushing op.
func (top Operator) yields(op Operator) bool {
	return top.Prec > op.Prec || top.Prec == op.Prec && op.Assoc == Left
}

// IsNumber reports whether s is a decimal number: an optional sign, then
// digits with at most one decimal point, with at least one digit overall.
// Exponents are not accepted.
func IsNumber(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	var dig, dot bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			dig = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return dig
}

// Apply evaluates the binary operator op on x and y, giving x op y.
// Division by exactly zero is an error, but exponentiation never is: a
// negative x with a fractional y gives NaN. Any op outside Operators results
// in an OperatorError.
func Apply(op string, x, y float64) (float64, error) {
	switch op {
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "*":
		return x * y, nil
	case "/":
		if y == 0 {
			return 0, &DivisionByZeroError{}
		}
		return x / y, nil
	case "^":
		return math.Pow(x, y), nil
	default:
		return 0, &OperatorError{Operator: op}
	}
}
