package shunting

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// EvalBig evaluates r like Eval, but in arbitrary-precision arithmetic with
// prec bits of mantissa. If prec is 0, the precision is 64. Operations with
// no real result, which give NaN under Eval, are DomainErrors instead.
func (r RPN) EvalBig(prec uint) (*big.Float, error) {
	if prec == 0 {
		prec = 64
	}
	stack := make([]*big.Float, 0, len(r)/2+1)
	for _, tok := range r {
		if IsNumber(tok.Text) {
			v, _, err := new(big.Float).SetPrec(prec).Parse(tok.Text, 10)
			if err != nil {
				panic("shunting: IsNumber accepted " + tok.Text + " but big.Float did not: " + err.Error())
			}
			stack = append(stack, v)
			continue
		}
		if _, ok := Lookup(tok.Text); !ok {
			return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
		}
		if len(stack) < 2 {
			return nil, &OperandError{Col: tok.Pos, Operator: tok.Text, Have: len(stack)}
		}
		y := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := applyBig(tok, stack[len(stack)-1], y); err != nil {
			return nil, err
		}
	}
	if len(stack) != 1 {
		return nil, &StackError{Len: len(stack)}
	}
	return stack[0], nil
}

// applyBig sets x to x op y, where op is the text of tok.
func applyBig(tok Token, x, y *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(big.ErrNaN); !ok {
			panic(r)
		}
		// Every NaN-producing operation involves an infinity.
		bad := x
		if !x.IsInf() {
			bad = y
		}
		err = &DomainError{Col: tok.Pos, X: new(big.Float).Copy(bad), Func: tok.Text}
	}()
	switch tok.Text {
	case "+":
		x.Add(x, y)
	case "-":
		x.Sub(x, y)
	case "*":
		x.Mul(x, y)
	case "/":
		if y.Sign() == 0 {
			return &DivisionByZeroError{Col: tok.Pos}
		}
		x.Quo(x, y)
	case "^":
		return powBig(tok, x, y)
	default:
		panic("shunting: applyBig on non-operator " + tok.Text)
	}
	return nil
}

// powBig sets x to x^y. Integer powers are computed exactly by repeated
// squaring. Otherwise bigfloat.Pow is used, which is only defined for positive
// x.
func powBig(tok Token, x, y *big.Float) error {
	switch {
	case y.Sign() == 0:
		x.SetInt64(1)
	case x.Sign() == 0:
		if y.Sign() < 0 {
			x.SetInf(false)
		}
		// Otherwise 0^y = 0, which x already is.
	case y.IsInt():
		n, _ := y.Int(nil)
		powInt(x, n)
	case x.Sign() > 0:
		bigfloat.Pow(x, x, y)
	default:
		return &DomainError{Col: tok.Pos, X: new(big.Float).Copy(x), Func: tok.Text}
	}
	return nil
}

// powInt sets x to x^n. x must be nonzero.
func powInt(x *big.Float, n *big.Int) {
	e := new(big.Int).Abs(n)
	b := new(big.Float).Copy(x)
	x.SetInt64(1)
	for i := e.BitLen() - 1; i >= 0; i-- {
		x.Mul(x, x)
		if e.Bit(i) == 1 {
			x.Mul(x, b)
		}
	}
	if n.Sign() < 0 {
		one := new(big.Float).SetPrec(x.Prec()).SetInt64(1)
		x.Quo(one, x)
	}
}
