package deskcalc

import "strconv"

// TokenKind is the class of a keystroke.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenDigit is one of the keys 0 through 9.
	TokenDigit
	// TokenDecimalPoint is the . key.
	TokenDecimalPoint
	// TokenOperator is a binary operator key.
	TokenOperator
	// TokenClear is the C key.
	TokenClear
	// TokenNegate is the ± key.
	TokenNegate
	// TokenPercent is the % key.
	TokenPercent
	// TokenEquals is the = key.
	TokenEquals
)

var tokenKindNames = [...]string{
	TokenNone:         "None",
	TokenDigit:        "Digit",
	TokenDecimalPoint: "DecimalPoint",
	TokenOperator:     "Operator",
	TokenClear:        "Clear",
	TokenNegate:       "Negate",
	TokenPercent:      "Percent",
	TokenEquals:       "Equals",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Op is a binary operator. Its value is the canonical character used for it
// in expressions.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// Glyph returns the text shown on the display for op.
func (op Op) Glyph() string {
	switch op {
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return string(rune(op))
	}
}

func (op Op) valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	default:
		return false
	}
}

// prec is the binding strength of op. Higher binds tighter.
func (op Op) prec() int8 {
	switch op {
	case OpMul, OpDiv:
		return 2
	case OpAdd, OpSub:
		return 1
	default:
		return 0
	}
}

// apply computes a op b. Division by zero is 0.
func (op Op) apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

// Token is a classified keystroke.
type Token struct {
	Kind TokenKind
	// Op is the operator for TokenOperator.
	Op Op
	// Text is the key label as it appears on the display. For operators this
	// is the glyph that was pressed, which may differ from the canonical
	// character, e.g. × for OpMul.
	Text string
}

// Keys with fixed labels.
var (
	DecimalPoint = Token{Kind: TokenDecimalPoint, Text: "."}
	Clear        = Token{Kind: TokenClear, Text: "C"}
	Negate       = Token{Kind: TokenNegate, Text: "±"}
	Percent      = Token{Kind: TokenPercent, Text: "%"}
	Equals       = Token{Kind: TokenEquals, Text: "="}
)

// Digit returns the token for a digit key. Panics if d is not in '0'..'9'.
func Digit(d byte) Token {
	if d < '0' || d > '9' {
		panic("deskcalc: invalid digit " + strconv.QuoteRune(rune(d)))
	}
	return Token{Kind: TokenDigit, Text: string(rune(d))}
}

// Operator returns the token for an operator key, using the operator's
// display glyph as its text. Panics if op is not one of the four operators.
func Operator(op Op) Token {
	if !op.valid() {
		panic("deskcalc: invalid operator " + strconv.QuoteRune(rune(op)))
	}
	return Token{Kind: TokenOperator, Op: op, Text: op.Glyph()}
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// Classify maps a key label to its token. Both the canonical operator
// characters and the display glyphs × and ÷ are accepted. An unknown label
// results in a *KeyError.
func Classify(label string) (Token, error) {
	switch label {
	case ".":
		return DecimalPoint, nil
	case "C":
		return Clear, nil
	case "±":
		return Negate, nil
	case "%":
		return Percent, nil
	case "=":
		return Equals, nil
	case "+", "-", "*", "/":
		return Token{Kind: TokenOperator, Op: Op(label[0]), Text: label}, nil
	case "×":
		return Token{Kind: TokenOperator, Op: OpMul, Text: label}, nil
	case "÷":
		return Token{Kind: TokenOperator, Op: OpDiv, Text: label}, nil
	}
	if len(label) == 1 && '0' <= label[0] && label[0] <= '9' {
		return Digit(label[0]), nil
	}
	return Token{}, &KeyError{Label: label}
}

// KeyError is an error from classifying a label that is not a calculator key.
type KeyError struct {
	// Label is the label that was not understood.
	Label string
}

func (err *KeyError) Error() string {
	return "unknown key " + strconv.Quote(err.Label)
}
