package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc"
)

var (
	displayLimit int
	historySize  int
	logPath      string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "deskcalc",
	Short: "Desk calculator with operator precedence",
	Long: `Deskcalc is a keyboard-driven desk calculator.

Run without a subcommand to open the interactive calculator. Digits, '.',
'+', '-', '*' or 'x', '/', '%' work as on a pocket calculator; enter or '='
evaluates, 'c' or esc clears, 'n' toggles the sign, and 'q' quits.

Use 'keys' to replay keystrokes non-interactively and 'eval' to evaluate
expressions directly.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&displayLimit, "display-limit", deskcalc.DefaultDisplayLimit, "maximum display length in characters")
	rootCmd.PersistentFlags().IntVar(&historySize, "history", deskcalc.DefaultHistorySize, "number of calculations to remember")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "log file (default no logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, or error")
	rootCmd.AddCommand(keysCmd, evalCmd)
}

// newSession creates a session configured from the persistent flags. The
// returned function closes the log file.
func newSession() (*deskcalc.Session, func() error, error) {
	if displayLimit < deskcalc.MinDisplayLimit {
		return nil, nil, fmt.Errorf("display limit (%d) must be at least %d", displayLimit, deskcalc.MinDisplayLimit)
	}
	if historySize < 1 {
		return nil, nil, fmt.Errorf("history size (%d) must be positive", historySize)
	}
	l, done, err := openLogger(logPath, logLevel)
	if err != nil {
		return nil, nil, err
	}
	s := deskcalc.NewSession(
		deskcalc.DisplayLimit(displayLimit),
		deskcalc.HistorySize(historySize),
		deskcalc.WithLogger(l),
	)
	return s, done, nil
}

// closeLog calls done and stores its error in *err unless *err already holds
// an error.
func closeLog(done func() error, err *error) {
	if cerr := done(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close log file: %w", cerr)
	}
}

// openLogger creates a text logger writing to path. With an empty path,
// the logger discards everything.
func openLogger(path, level string) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), f.Close, nil
}
