package deskcalc

import (
	"strconv"
	"strings"
)

// Evaluator evaluates expressions made of decimal numbers and the four binary
// operators. Multiplication and division bind tighter than addition and
// subtraction, and operators of equal precedence group left to right. A - at
// the start of the expression or immediately after another operator begins a
// negative number instead of subtracting.
//
// An Evaluator reuses its stacks between calls. The zero value is ready to
// use. It is not safe to use an Evaluator concurrently.
type Evaluator struct {
	nums []float64
	ops  []Op
	buf  strings.Builder
}

// stackDepth is the initial capacity of the evaluator stacks. Stacks grow past
// it as needed.
const stackDepth = 100

// NewEvaluator creates an evaluator with preallocated stacks.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		nums: make([]float64, 0, stackDepth),
		ops:  make([]Op, 0, stackDepth),
	}
}

// Eval evaluates an expression and returns the result. Eval never fails.
// Runes other than digits, '.', and operators are skipped. An operator without
// enough operands is dropped, division by zero is 0, and an expression with
// no numbers is 0.
func (ev *Evaluator) Eval(expr string) float64 {
	ev.nums = ev.nums[:0]
	ev.ops = ev.ops[:0]
	ev.buf.Reset()
	var prev rune
	for i, r := range expr {
		switch {
		case '0' <= r && r <= '9', r == '.':
			ev.buf.WriteRune(r)
		case isOperator(r):
			ev.flush()
			op := opFor(r)
			if op == OpSub && (i == 0 || isOperator(prev)) {
				// Unary minus: start a negative number.
				ev.buf.WriteByte('-')
				break
			}
			for len(ev.ops) > 0 && ev.ops[len(ev.ops)-1].prec() >= op.prec() {
				ev.reduce()
			}
			ev.ops = append(ev.ops, op)
		}
		prev = r
	}
	ev.flush()
	for len(ev.ops) > 0 {
		ev.reduce()
	}
	if len(ev.nums) == 0 {
		return 0
	}
	return ev.nums[0]
}

// flush pushes the pending number, if there is one.
func (ev *Evaluator) flush() {
	if ev.buf.Len() == 0 {
		return
	}
	ev.push(atof(ev.buf.String()))
	ev.buf.Reset()
}

func (ev *Evaluator) push(x float64) {
	ev.nums = append(ev.nums, x)
}

// pop removes the top operand and returns it.
func (ev *Evaluator) pop() float64 {
	x := ev.nums[len(ev.nums)-1]
	ev.nums = ev.nums[:len(ev.nums)-1]
	return x
}

// reduce pops the top operator and applies it to the top two operands. If
// there are fewer than two operands, the operator is discarded.
func (ev *Evaluator) reduce() {
	op := ev.ops[len(ev.ops)-1]
	ev.ops = ev.ops[:len(ev.ops)-1]
	if len(ev.nums) < 2 {
		return
	}
	b := ev.pop()
	a := ev.pop()
	ev.push(op.apply(a, b))
}

// Evaluate is a shortcut to evaluate an expression with a new Evaluator.
func Evaluate(expr string) float64 {
	var ev Evaluator
	return ev.Eval(expr)
}

// FormatResult formats a number for the display using six significant digits,
// like the C format %.6g. Negative zero is formatted as 0.
func FormatResult(x float64) string {
	if x == 0 {
		x = 0
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}
