package deskcalc

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Session is the state of a calculator between keystrokes: the display, the
// canonical expression behind it, and the history of completed calculations.
// It is not safe to use a Session concurrently.
type Session struct {
	display string
	expr    string
	// fresh is set after =. The next digit starts a new number. Operator keys
	// leave it alone and every other key clears it.
	fresh bool

	hist  *History
	eval  Evaluator
	limit int
	log   *slog.Logger
}

// NewSession creates a session showing "0" with an empty expression and
// history.
func NewSession(opts ...SessionOption) *Session {
	s := Session{
		display: "0",
		limit:   DefaultDisplayLimit,
		log:     slog.New(slog.DiscardHandler),
	}
	hist := DefaultHistorySize
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case limitopt:
			if opt > 0 {
				s.limit = max(int(opt), MinDisplayLimit)
			}
		case histopt:
			if opt > 0 {
				hist = int(opt)
			}
		case logopt:
			if opt.l != nil {
				s.log = opt.l
			}
		default:
			panic("deskcalc: unknown option type")
		}
	}
	s.hist = NewHistory(hist)
	return &s
}

// Display returns the text the user sees. It is never empty.
func (s *Session) Display() string {
	return s.display
}

// Expression returns the canonical expression that = evaluates. After =, it
// is still the expression that was evaluated, while the display shows the
// result.
func (s *Session) Expression() string {
	return s.expr
}

// AwaitingFreshInput reports whether the next digit starts a new number
// rather than extending the displayed result. It is set by = and cleared by
// any following key other than an operator.
func (s *Session) AwaitingFreshInput() bool {
	return s.fresh
}

// History returns the session's calculation history.
func (s *Session) History() *History {
	return s.hist
}

// DisplayLimit returns the maximum number of runes on the display.
func (s *Session) DisplayLimit() int {
	return s.limit
}

// Key classifies a key label and applies it. If the label is not a calculator
// key, the session is unchanged and the error is a *KeyError.
func (s *Session) Key(label string) error {
	tok, err := Classify(label)
	if err != nil {
		s.log.Debug("unknown key", slog.String("label", label))
		return err
	}
	s.Apply(tok)
	return nil
}

// Apply updates the session for one keystroke. Keys that make no sense in the
// current state, like an operator following another operator, are ignored.
func (s *Session) Apply(tok Token) {
	switch tok.Kind {
	case TokenClear:
		s.display = "0"
		s.expr = ""
		s.fresh = false
	case TokenNegate:
		s.fresh = false
		s.negate()
	case TokenPercent:
		s.fresh = false
		s.display = FormatResult(atof(s.display) / 100)
		s.expr = canonical(s.display)
	case TokenOperator:
		s.operator(tok)
	case TokenEquals:
		s.equals()
	case TokenDigit, TokenDecimalPoint:
		s.digit(tok)
	default:
		s.ignore(tok, "invalid token")
	}
}

func (s *Session) ignore(tok Token, why string) {
	s.log.Debug("ignored key", slog.String("key", tok.String()), slog.String("reason", why))
}

func (s *Session) full() bool {
	return utf8.RuneCountInString(s.display) >= s.limit
}

func (s *Session) negate() {
	switch {
	case strings.HasPrefix(s.display, "-"):
		s.display = s.display[1:]
		if s.display == "" {
			s.display = "0"
		}
	case s.display == "0":
		// Nothing to negate.
	case s.full():
		s.ignore(Negate, "display full")
		return
	default:
		s.display = "-" + s.display
	}
	s.expr = canonical(s.display)
}

func (s *Session) operator(tok Token) {
	switch {
	case !tok.Op.valid():
		s.ignore(tok, "invalid operator")
		return
	case s.expr == "":
		s.ignore(tok, "no operand")
		return
	case endsInOperator(s.expr):
		s.ignore(tok, "follows operator")
		return
	case s.full():
		s.ignore(tok, "display full")
		return
	}
	text := tok.Text
	if text == "" {
		text = tok.Op.Glyph()
	}
	s.expr += string(rune(tok.Op))
	s.display += text
}

func (s *Session) equals() {
	if s.expr == "" {
		s.ignore(Equals, "empty expression")
		return
	}
	r := FormatResult(s.eval.Eval(s.expr))
	s.hist.Push(s.expr + " = " + r)
	s.log.Debug("evaluated", slog.String("expression", s.expr), slog.String("result", r))
	s.display = r
	s.fresh = true
}

func (s *Session) digit(tok Token) {
	text := tok.Text
	switch tok.Kind {
	case TokenDigit:
		if len(text) != 1 || !isDigit(text[0]) {
			s.ignore(tok, "invalid digit")
			return
		}
	case TokenDecimalPoint:
		text = "."
	}
	switch {
	case s.fresh:
		s.display = text
		s.expr = ""
		s.fresh = false
	case s.display == "0" && tok.Kind == TokenDigit:
		s.display = text
	case s.full():
		s.ignore(tok, "display full")
		return
	case tok.Kind == TokenDecimalPoint && strings.Contains(numeral(s.display), "."):
		s.ignore(tok, "numeral has a decimal point")
		return
	default:
		s.display += text
	}
	s.expr = canonical(s.display)
}
