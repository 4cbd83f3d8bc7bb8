package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/calc"
)

// eventBinding maps keyboard keys onto a calculator event.
type eventBinding struct {
	key.Binding
	Event calc.Event
}

type keyMap struct {
	Events []eventBinding

	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Press   key.Binding
	Tape    key.Binding
	Command key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	ev := func(e calc.Event, help string, keys ...string) eventBinding {
		return eventBinding{Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)), Event: e}
	}
	var events []eventBinding
	for d := '0'; d <= '9'; d++ {
		b := ev(calc.Digit(d), "digit", string(d))
		if d != '0' {
			b.SetHelp("", "")
		} else {
			b.SetHelp("0-9", "digits")
		}
		events = append(events, b)
	}
	events = append(events,
		ev(calc.Dot, "point", ".", ","),
		ev(calc.Op(calc.Add), "add", "+"),
		ev(calc.Op(calc.Subtract), "subtract", "-"),
		ev(calc.Op(calc.Multiply), "multiply", "*", "x"),
		ev(calc.Op(calc.Divide), "divide", "/"),
		ev(calc.Evaluate, "equals", "=", "enter"),
		ev(calc.Backspace, "backspace", "backspace"),
		ev(calc.ClearEntry, "clear entry", "delete"),
		ev(calc.Clear, "clear", "esc"),
		ev(calc.Negate, "±", "n"),
		ev(calc.Percent, "percent", "%"),
		ev(calc.Sqrt, "√", "r"),
		ev(calc.Reciprocal, "1/x", "i"),
		ev(calc.MemoryClear, "MC", "ctrl+l"),
		ev(calc.MemoryRecall, "MR", "ctrl+r"),
		ev(calc.MemoryStore, "MS", "ctrl+s"),
		ev(calc.MemoryAdd, "M+", "ctrl+p"),
	)
	return keyMap{
		Events:  events,
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Press:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "press")),
		Tape:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tape")),
		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// eventFor returns the calculator event bound to msg.
func (k keyMap) eventFor(msg tea.KeyMsg) (calc.Event, bool) {
	for _, b := range k.Events {
		if key.Matches(msg, b.Binding) {
			return b.Event, true
		}
	}
	return calc.Event{}, false
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Tape, k.Command, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	var col []key.Binding
	cols := [][]key.Binding{}
	for _, b := range k.Events {
		if b.Help().Key == "" {
			continue
		}
		col = append(col, b.Binding)
		if len(col) == 6 {
			cols = append(cols, col)
			col = nil
		}
	}
	if len(col) > 0 {
		cols = append(cols, col)
	}
	return append(cols, []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Press}, k.ShortHelp()[1:])
}
