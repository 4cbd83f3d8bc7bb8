// Package calc implements the desk-calculator input engine: it buffers operands
// as typed text, defers the chosen operator until the second operand is
// complete, and keeps a single memory register.
//
// The engine is not safe for concurrent use; front ends deliver events one at a time.
package calc

import (
	"math"
	"strings"
)

// State is a copy of the engine's internal state.
type State struct {
	Left     string
	Right    string
	Operator Operator // zero when no operator is pending
	Shadow   bool
	Memory   float64
}

// Evaluation describes one completed computation.
type Evaluation struct {
	Left      string
	Operator  Operator
	Right     string
	Result    string
	DivByZero bool
}

// Expression renders the operands and operator as they were entered.
func (e Evaluation) Expression() string {
	return e.Left + " " + e.Operator.Symbol() + " " + e.Right
}

// Engine is the calculator state machine.
type Engine struct {
	left   string
	right  string
	op     Operator
	shadow bool
	memory float64

	hooks []func(Evaluation)
}

// New returns an engine showing "0" with an empty memory register.
func New() *Engine {
	return &Engine{left: zero}
}

// OnEvaluate registers fn to run after every evaluation.
func (e *Engine) OnEvaluate(fn func(Evaluation)) {
	if fn != nil {
		e.hooks = append(e.hooks, fn)
	}
}

func (e *Engine) Left() string  { return e.left }
func (e *Engine) Right() string { return e.right }
func (e *Engine) Shadow() bool  { return e.shadow }

// Memory returns the memory register.
func (e *Engine) Memory() float64 { return e.memory }

// Operator returns the pending operator, if any.
func (e *Engine) Operator() (Operator, bool) { return e.op, e.op != 0 }

// Errored reports whether the primary operand holds the division error text.
func (e *Engine) Errored() bool { return e.left == ErrDivideByZeroText }

func (e *Engine) Snapshot() State {
	return State{Left: e.left, Right: e.right, Operator: e.op, Shadow: e.shadow, Memory: e.memory}
}

// Display returns the text a front end should render. Right after an
// evaluation only the result is shown; otherwise the left operand, operator
// symbol and right operand are joined with single spaces.
func (e *Engine) Display() string {
	if e.shadow {
		return e.left
	}
	return e.left + " " + e.op.Symbol() + " " + e.right
}

// Apply feeds one event into the engine. It never fails: invalid operations
// are either ignored or surface as text on the display.
func (e *Engine) Apply(ev Event) {
	switch ev.Kind {
	case KindDigit:
		e.digit(ev.Digit)
	case KindOperator:
		e.operator(ev.Operator)
	case KindEvaluate:
		if e.op != 0 && e.left != "" && e.right != "" {
			e.evaluate()
		}
	case KindClear:
		e.reset(zero)
	case KindClearEntry:
		if e.right != "" {
			e.right = ""
			return
		}
		e.left = zero
		e.op = 0
		e.shadow = false
	case KindBackspace:
		e.backspace()
	case KindDot:
		e.dot()
	case KindNegate:
		e.negate()
	case KindMemoryClear:
		e.memory = 0
	case KindMemoryRecall:
		e.left = formatShort(e.memory)
	case KindMemoryStore:
		e.memory = parseOr(e.left, 0)
	case KindMemoryAdd:
		e.memory += parseOr(e.left, 0)
	case KindSqrt:
		if n := parseOr(e.left, 0); n >= 0 {
			e.left = formatShort(math.Sqrt(n))
		}
	case KindReciprocal:
		if n := parseOr(e.left, 0); n != 0 {
			e.left = formatShort(1 / n)
		}
	case KindPercent:
		e.left = formatShort(parseOr(e.left, 0) / 100)
	}
}

func (e *Engine) reset(left string) {
	e.left = left
	e.op = 0
	e.right = ""
	e.shadow = false
}

func (e *Engine) digit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	switch {
	case e.op == 0:
		e.left = appendDigit(e.left, d)
	case e.shadow:
		// A digit after a result starts a new expression.
		e.reset(string(d))
	default:
		e.right = appendDigit(e.right, d)
	}
}

func (e *Engine) operator(o Operator) {
	if o < Add || o > Divide {
		return
	}
	if e.op == 0 {
		e.op = o
		return
	}
	if !e.shadow && e.right != "" {
		e.evaluate()
	}
	e.op = o
	e.right = ""
	e.shadow = false
}

func (e *Engine) backspace() {
	if e.op != 0 {
		e.right = dropLast(e.right)
		return
	}
	e.left = dropLast(e.left)
	if e.left == "" || e.left == "-" {
		e.left = zero
	}
}

func (e *Engine) dot() {
	if e.op == 0 {
		if !strings.Contains(e.left, ".") {
			e.left += "."
		}
		return
	}
	if strings.Contains(e.right, ".") {
		return
	}
	if e.right == "" {
		e.right = zero
	}
	e.right += "."
}

func (e *Engine) negate() {
	if e.Errored() {
		return
	}
	switch {
	case e.op == 0:
		if e.left != zero && e.left != "0." {
			e.left = toggleSign(e.left)
		}
	case e.shadow:
		if e.left != zero {
			e.left = toggleSign(e.left)
		}
	}
}

func (e *Engine) evaluate() {
	l, r := parseOr(e.left, 0), parseOr(e.right, 0)
	ev := Evaluation{Left: e.left, Operator: e.op, Right: e.right}

	switch e.op {
	case Add:
		ev.Result = canonicalize(l + r)
	case Subtract:
		ev.Result = canonicalize(l - r)
	case Multiply:
		ev.Result = canonicalize(l * r)
	case Divide:
		if r == 0 {
			ev.Result = ErrDivideByZeroText
			ev.DivByZero = true
		} else {
			ev.Result = canonicalize(l / r)
		}
	}

	e.left = ev.Result
	e.shadow = true
	for _, fn := range e.hooks {
		fn(ev)
	}
}
