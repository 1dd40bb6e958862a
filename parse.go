package shunting

// Compile converts an infix expression to reverse Polish notation.
func Compile(s string) (RPN, error) {
	return ShuntingYard(Tokenize(s))
}

// ShuntingYard reorders infix tokens into reverse Polish notation.
//
// Numbers go straight to the output. An operator first moves to the output
// every stacked operator that binds at least as tightly, or strictly more
// tightly if the incoming operator is right-associative, and is then
// stacked. A comma outputs operators down to the nearest open parenthesis,
// and a close parenthesis does the same and then discards the open
// parenthesis. Any other token is passed to the output untouched, leaving
// the evaluator to reject it.
func ShuntingYard(toks []Token) (RPN, error) {
	out := make(RPN, 0, len(toks))
	var stk []Token
	for _, tok := range toks {
		switch {
		case IsNumber(tok.Text):
			out = append(out, tok)
		case tok.Text == "(":
			stk = append(stk, tok)
		case tok.Text == ")":
			var ok bool
			out, stk, ok = unwind(out, stk)
			if !ok {
				return nil, &BracketError{Col: tok.Pos, Right: ")"}
			}
			// Drop the open paren.
			stk = stk[:len(stk)-1]
		case tok.Text == ",":
			var ok bool
			out, stk, ok = unwind(out, stk)
			if !ok {
				return nil, &SeparatorError{Col: tok.Pos, Sep: ","}
			}
		default:
			op, ok := Lookup(tok.Text)
			if !ok {
				out = append(out, tok)
				continue
			}
			for len(stk) > 0 {
				top, ok := Lookup(stk[len(stk)-1].Text)
				if !ok || !top.yields(op) {
					// Open paren, or an operator that binds more loosely.
					break
				}
				out = append(out, stk[len(stk)-1])
				stk = stk[:len(stk)-1]
			}
			stk = append(stk, tok)
		}
	}
	for len(stk) > 0 {
		tok := stk[len(stk)-1]
		if tok.Text == "(" {
			return nil, &BracketError{Col: tok.Pos, Left: "("}
		}
		out = append(out, tok)
		stk = stk[:len(stk)-1]
	}
	return out, nil
}

// unwind moves operators from the stack to the output until an open paren
// is on top. The paren stays on the stack. ok is false if the stack empties
// without finding one.
func unwind(out RPN, stk []Token) (RPN, []Token, bool) {
	for len(stk) > 0 {
		top := stk[len(stk)-1]
		if top.Text == "(" {
			return out, stk, true
		}
		out = append(out, top)
		stk = stk[:len(stk)-1]
	}
	return out, stk, false
}
