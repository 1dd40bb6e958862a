// Package shunting compiles infix arithmetic expressions to reverse Polish
// notation with the shunting-yard algorithm and evaluates the result.
//
// Expressions use numbers, the binary operators + - * / ^, and parentheses.
// "^" is exponentiation and groups right to left, so "2^3^2" is "2^(3^2)";
// the rest group left to right. There are no unary operators: "-1" is not an
// expression. Whitespace is removed before anything else, so it never
// separates tokens, and "1 2" is the number 12.
//
// Evaluation is float64 by default. RPN.EvalBig evaluates the same RPN in
// arbitrary precision.
//
package shunting
