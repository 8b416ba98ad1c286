package deskcalc

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Operators contains the runes which are considered to be operators, both
// canonical characters and display glyphs.
const Operators = "+-*/×÷"

func isOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// opFor gets the operator for an operator rune. Glyphs map to their canonical
// operators.
func opFor(r rune) Op {
	switch r {
	case '×':
		return OpMul
	case '÷':
		return OpDiv
	default:
		return Op(r)
	}
}

var glyphs = strings.NewReplacer("×", string(rune(OpMul)), "÷", string(rune(OpDiv)))

// canonical replaces display glyphs with canonical operator characters.
func canonical(s string) string {
	return glyphs.Replace(s)
}

// endsInOperator reports whether the last rune of s is an operator.
func endsInOperator(s string) bool {
	r, sz := utf8.DecodeLastRuneInString(s)
	return sz > 0 && isOperator(r)
}

// numeral returns the text of s following its last operator, i.e. the number
// currently being typed.
func numeral(s string) string {
	k := strings.LastIndexFunc(s, isOperator)
	if k < 0 {
		return s
	}
	_, sz := utf8.DecodeRuneInString(s[k:])
	return s[k+sz:]
}

// numprefix returns the longest prefix of s that reads as a decimal number:
// an optional sign, digits with an optional fraction, and an optional
// exponent. The result is empty if s does not start with a number.
func numprefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	dig := false
	for i < len(s) && isDigit(s[i]) {
		i++
		dig = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			dig = true
		}
	}
	if !dig {
		return ""
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	return s[:end]
}

// atof converts the leading number in s. Text that does not start with a
// number, like a lone sign, is 0. Values too large to represent are infinite.
func atof(s string) float64 {
	n := numprefix(s)
	if n == "" {
		return 0
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}
