package deskcalc

import "log/slog"

// DefaultDisplayLimit is the maximum display length in runes when no
// DisplayLimit option is given.
const DefaultDisplayLimit = 50

// MinDisplayLimit is the smallest display limit a session uses. It is the
// widest text FormatResult produces, as in "-1.23457e+308", so that results
// of = and % always fit.
const MinDisplayLimit = 13

// SessionOption is an option used when creating a session.
type SessionOption interface {
	sessionOption()
}

type (
	limitopt int
	histopt  int
	logopt   struct {
		l *slog.Logger
	}
)

func (limitopt) sessionOption() {}
func (histopt) sessionOption()  {}
func (logopt) sessionOption()   {}

// DisplayLimit sets the maximum number of runes on the display. Keys that
// would grow the display past the limit are dropped. Values less than 1 leave
// the default, and other values below MinDisplayLimit are raised to it.
func DisplayLimit(n int) SessionOption {
	return limitopt(n)
}

// HistorySize sets the number of calculations the session remembers. Values
// less than 1 leave the default.
func HistorySize(n int) SessionOption {
	return histopt(n)
}

// WithLogger sets the logger the session reports keystrokes and evaluations
// to, at debug level. By default nothing is logged.
func WithLogger(l *slog.Logger) SessionOption {
	return logopt{l}
}
