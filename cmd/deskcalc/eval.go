package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc"
)

var (
	evalVerb string
	evalEcho bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [EXPR...]",
	Short: "Evaluate expressions directly",
	Long: `Eval evaluates each argument as an expression of decimal numbers and the
operators + - * / (or × ÷), with * and / binding tighter than + and -. With no
arguments, each non-blank line of standard input is an expression.`,
	Example: `  deskcalc eval '2+3*4' '5+-3'
  deskcalc eval --fmt %.2f '10/3'`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&evalVerb, "fmt", "%.6g", "result formatting string")
	evalCmd.Flags().BoolVar(&evalEcho, "echo", false, "print each expression before its result")
}

func runEval(cmd *cobra.Command, args []string) error {
	exprs := args
	if len(exprs) == 0 {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				exprs = append(exprs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading expressions: %w", err)
		}
	}
	out := cmd.OutOrStdout()
	verb := evalVerb + "\n"
	ev := deskcalc.NewEvaluator()
	for _, e := range exprs {
		if evalEcho {
			fmt.Fprintf(out, "%s = ", e)
		}
		fmt.Fprintf(out, verb, ev.Eval(e))
	}
	return nil
}
