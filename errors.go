package shunting

import (
	"math/big"
	"strconv"
)

// DivisionByZeroError is an error indicating a division whose divisor is
// exactly zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a token that is neither a number nor
// a known operator in operator position. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator reached with fewer than
// two values available. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that lacked operands.
	Operator string
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "insufficient operands for "+err.Operator+": have "+strconv.Itoa(err.Have)+", need 2")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// StackError is an error indicating that evaluation ended with other than
// exactly one value. It implements InputError.
type StackError struct {
	// Len is the number of values left after evaluation.
	Len int
}

func (err *StackError) Error() string {
	if err.Len == 0 {
		return "malformed expression: no value"
	}
	return "malformed expression: " + strconv.Itoa(err.Len) + " values left after evaluation"
}

// Pos is always 0, since no single token is responsible for the error.
func (err *StackError) Pos() int {
	return 0
}

// BracketError is an error indicating an unmatched parenthesis. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the open paren if it is the unmatched one.
	Left string
	// Right is the close paren if it is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside any parentheses. It
// implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// DomainError is an error from arbitrary-precision evaluation of an
// operation with no real result, such as a negative number to a fractional
// power. It implements InputError. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// X is the out-of-domain argument.
	X *big.Float
	// Func is the operator.
	Func string
}

func (err *DomainError) Error() string {
	r := "outside domain"
	if err.X != nil {
		r = err.X.String() + " " + r
	}
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

// Unwrap returns a big.ErrNaN, since an operation outside its domain has a
// NaN result.
func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error, or 0
	// if the error is not attributable to one token.
	Pos() int
}

var (
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*DomainError)(nil)
)
