// Package deskcalc implements the input and evaluation engine of a desk
// calculator.
//
// A Session accepts keystrokes one at a time, the way buttons on a pocket
// calculator are pressed: digits, a decimal point, the four binary operators,
// and the C, ±, %, and = keys. It keeps the string shown to the user and a
// canonical expression in which display glyphs like × and ÷ are replaced with
// * and /. Pressing = evaluates the expression with the usual precedence, so
// "2+3×4" is 14, and records the calculation in a short rolling history.
//
// The Evaluator can also be used on its own. It never fails: malformed input
// degrades to a defined result, division by zero yields 0, and the empty
// expression is 0.
package deskcalc
