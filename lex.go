package shunting

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical unit of an expression.
type Token struct {
	// Text is the token's source text: a numeric literal or a single rune.
	Text string
	// Pos is the 1-based rune column of the start of the token in the
	// original input, counting whitespace.
	Pos int
}

func (t Token) String() string {
	return t.Text + "@" + strconv.Itoa(t.Pos)
}

// Tokenize splits an expression into tokens. Whitespace is removed before
// scanning, so it never separates tokens: "1 2" is the single number 12.
// Runs of digits and decimal points form numbers; every other rune is its
// own token. Tokenize does not check that numbers are well-formed.
func Tokenize(s string) []Token {
	var (
		toks []Token
		buf  strings.Builder
		at   int
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		toks = append(toks, Token{Text: buf.String(), Pos: at})
		buf.Reset()
	}
	col := 0
	for _, r := range s {
		col++
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			if buf.Len() == 0 {
				at = col
			}
			buf.WriteRune(r)
		default:
			flush()
			toks = append(toks, Token{Text: string(r), Pos: col})
		}
	}
	flush()
	return toks
}

// ParseRPN splits postfix text on whitespace. Unlike Tokenize, whitespace
// separates tokens here, since adjacent operands could not be told apart
// otherwise.
func ParseRPN(s string) RPN {
	var (
		rpn RPN
		at  int
	)
	col := 0
	start := -1
	for i, r := range s {
		col++
		if unicode.IsSpace(r) {
			if start >= 0 {
				rpn = append(rpn, Token{Text: s[start:i], Pos: at})
				start = -1
			}
			continue
		}
		if start < 0 {
			start, at = i, col
		}
	}
	if start >= 0 {
		rpn = append(rpn, Token{Text: s[start:], Pos: at})
	}
	return rpn
}
