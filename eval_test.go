package deskcalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/deskcalc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"empty", "", 0},
		{"num", "7", 7},
		{"frac", "1.5", 1.5},
		{"lead-dot", ".5", 0.5},
		{"trail-dot", "5.", 5},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/8", 4.0 / 5.0 / 8.0},
		{"mul-over-add", "2+3*4", 14},
		{"mul-then-add", "2*3+4", 10},
		{"div-over-sub", "10-6/2", 7},
		{"left-assoc-sub", "10-4+3", 9},
		{"left-assoc-div", "8/4*2", 4},
		{"mixed", "1+2*3-4/2", 5},
		{"glyphs", "6×7÷2", 21},
		{"neg-lead", "-3+5", 2},
		{"neg-after-op", "5+-3", 2},
		{"neg-after-mul", "4*-2", -8},
		{"neg-after-div", "9/-3", -3},
		{"double-sub", "5--3", 8},
		{"div-zero", "8/0", 0},
		{"div-zero-chain", "8/0+1", 1},
		{"zero-div", "0/5", 0},
		{"trailing-op", "5+", 5},
		{"trailing-mul", "2+3*", 6},
		{"lone-minus", "-", 0},
		{"lone-op", "+", 0},
		{"leading-plus", "+4", 4},
		{"skip-other", "1 + 2", 3},
		{"multi-dot", "1.2.3", 1.2},
		{"neg-neg", "--3", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := deskcalc.Evaluate(c.src); got != c.r {
				t.Errorf("%q: want %g, got %g", c.src, c.r, got)
			}
		})
	}
}

func TestEvaluatorReuse(t *testing.T) {
	ev := deskcalc.NewEvaluator()
	srcs := []struct {
		src string
		r   float64
	}{
		{"1+2*3", 7},
		{"5+", 5},
		{"", 0},
		{"2*3+4", 10},
		{"9/0", 0},
	}
	for _, c := range srcs {
		if got := ev.Eval(c.src); got != c.r {
			t.Errorf("%q: want %g, got %g", c.src, c.r, got)
		}
	}
	var zero deskcalc.Evaluator
	if got := zero.Eval("3*3-1"); got != 8 {
		t.Errorf("zero Evaluator: want 8, got %g", got)
	}
}

func TestEvalSkipsLetters(t *testing.T) {
	// Exponent markers are not operators, so the digits around them run
	// together.
	if r := deskcalc.Evaluate("1e999"); r != 1999 {
		t.Errorf("1e999: want 1999, got %g", r)
	}
	if r := deskcalc.Evaluate("1e+05"); r != 6 {
		t.Errorf("1e+05: want 6, got %g", r)
	}
}

func TestFormatResult(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{8, "8"},
		{-3, "-3"},
		{0.5, "0.5"},
		{0.1 + 0.2, "0.3"},
		{1.0 / 3.0, "0.333333"},
		{123456, "123456"},
		{1234567, "1.23457e+06"},
		{1e6, "1e+06"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{2.5e-7, "2.5e-07"},
	}
	for _, c := range cases {
		if got := deskcalc.FormatResult(c.x); got != c.want {
			t.Errorf("FormatResult(%v): want %q, got %q", c.x, c.want, got)
		}
	}
}
