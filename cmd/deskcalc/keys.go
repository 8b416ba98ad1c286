package main

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc"
)

var keysCmd = &cobra.Command{
	Use:   "keys [KEYS...]",
	Short: "Replay keystrokes and print the display and history",
	Long: `Keys feeds every character of its arguments to a calculator session as a
key press, as if typed on the keypad, then prints the history followed by the
final display. With no arguments, keys are read from standard input.
Whitespace is skipped, and characters that are not calculator keys are
reported and ignored.

Use -- before arguments that start with '-'.`,
	Example: `  deskcalc keys 12+3×4=
  echo '50 % ±' | deskcalc keys`,
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) (err error) {
	s, done, err := newSession()
	if err != nil {
		return err
	}
	defer closeLog(done, &err)
	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading keys: %w", err)
		}
		args = []string{string(in)}
	}
	stderr := cmd.ErrOrStderr()
	for _, arg := range args {
		for _, r := range arg {
			if unicode.IsSpace(r) {
				continue
			}
			err := s.Key(string(r))
			var ke *deskcalc.KeyError
			switch {
			case err == nil:
			case errors.As(err, &ke):
				fmt.Fprintln(stderr, color.RedString("skipping %v", ke))
			default:
				return err
			}
		}
	}
	out := cmd.OutOrStdout()
	if h := s.History().Render(); h != "" {
		fmt.Fprintln(out, color.CyanString("%s", h))
	}
	fmt.Fprintln(out, color.GreenString("%s", s.Display()))
	return nil
}
