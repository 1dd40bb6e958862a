package shunting

import "strings"

// RPN is an expression in reverse Polish notation: each operator follows its
// two operands.
type RPN []Token

// Texts returns the text of each token.
func (r RPN) Texts() []string {
	if r == nil {
		return nil
	}
	s := make([]string, len(r))
	for i, tok := range r {
		s[i] = tok.Text
	}
	return s
}

// String formats r as postfix text that ParseRPN accepts.
func (r RPN) String() string {
	var b strings.Builder
	for i, tok := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
