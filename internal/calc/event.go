package calc

// Operator is a pending binary operation.
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Symbol returns the operator as shown on the display.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	}
	return ""
}

func (o Operator) String() string { return o.Symbol() }

// ParseOperator maps a typed rune onto an operator.
func ParseOperator(r rune) (Operator, bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Subtract, true
	case '*', 'x', '×':
		return Multiply, true
	case '/', '÷':
		return Divide, true
	}
	return 0, false
}

// Kind identifies an input event.
type Kind int

const (
	KindDigit Kind = iota + 1
	KindOperator
	KindEvaluate
	KindClear
	KindClearEntry
	KindBackspace
	KindDot
	KindNegate
	KindMemoryClear
	KindMemoryRecall
	KindMemoryStore
	KindMemoryAdd
	KindSqrt
	KindReciprocal
	KindPercent
)

var kindNames = map[Kind]string{
	KindDigit:        "digit",
	KindOperator:     "operator",
	KindEvaluate:     "evaluate",
	KindClear:        "clear",
	KindClearEntry:   "clear_entry",
	KindBackspace:    "backspace",
	KindDot:          "dot",
	KindNegate:       "negate",
	KindMemoryClear:  "memory_clear",
	KindMemoryRecall: "memory_recall",
	KindMemoryStore:  "memory_store",
	KindMemoryAdd:    "memory_add",
	KindSqrt:         "sqrt",
	KindReciprocal:   "reciprocal",
	KindPercent:      "percent",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Event is a single key press delivered to the engine.
type Event struct {
	Kind     Kind
	Digit    rune
	Operator Operator
}

// Digit returns a digit event. Runes outside '0'..'9' produce an event the engine ignores.
func Digit(d rune) Event { return Event{Kind: KindDigit, Digit: d} }

// Op returns an operator event.
func Op(o Operator) Event { return Event{Kind: KindOperator, Operator: o} }

var (
	Evaluate     = Event{Kind: KindEvaluate}
	Clear        = Event{Kind: KindClear}
	ClearEntry   = Event{Kind: KindClearEntry}
	Backspace    = Event{Kind: KindBackspace}
	Dot          = Event{Kind: KindDot}
	Negate       = Event{Kind: KindNegate}
	MemoryClear  = Event{Kind: KindMemoryClear}
	MemoryRecall = Event{Kind: KindMemoryRecall}
	MemoryStore  = Event{Kind: KindMemoryStore}
	MemoryAdd    = Event{Kind: KindMemoryAdd}
	Sqrt         = Event{Kind: KindSqrt}
	Reciprocal   = Event{Kind: KindReciprocal}
	Percent      = Event{Kind: KindPercent}
)

func (e Event) String() string {
	switch e.Kind {
	case KindDigit:
		return string(e.Digit)
	case KindOperator:
		return e.Operator.Symbol()
	}
	return e.Kind.String()
}

// Category groups events the way a keypad groups its buttons.
type Category int

const (
	CategoryNumber Category = iota
	CategoryMemory
	CategoryOperator
	CategorySpecial
	CategoryEqual
	CategoryClear
)

func (c Category) String() string {
	switch c {
	case CategoryNumber:
		return "number"
	case CategoryMemory:
		return "memory"
	case CategoryOperator:
		return "operator"
	case CategorySpecial:
		return "special"
	case CategoryEqual:
		return "equal"
	case CategoryClear:
		return "clear"
	}
	return "unknown"
}

// Category reports which keypad group the event belongs to.
func (e Event) Category() Category {
	switch e.Kind {
	case KindOperator:
		return CategoryOperator
	case KindEvaluate:
		return CategoryEqual
	case KindClear, KindClearEntry, KindBackspace:
		return CategoryClear
	case KindMemoryClear, KindMemoryRecall, KindMemoryStore, KindMemoryAdd:
		return CategoryMemory
	case KindSqrt, KindReciprocal, KindPercent:
		return CategorySpecial
	}
	return CategoryNumber
}
