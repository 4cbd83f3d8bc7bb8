package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/calc"
)

// Button is one key on the on-screen keypad.
type Button struct {
	Label string
	Event calc.Event
}

// Keypad is the on-screen button grid. Rows may differ in length.
type Keypad [][]Button

// DefaultKeypad mirrors a classic desk calculator layout.
func DefaultKeypad() Keypad {
	d := func(r rune) Button { return Button{Label: string(r), Event: calc.Digit(r)} }
	op := func(o calc.Operator) Button { return Button{Label: o.Symbol(), Event: calc.Op(o)} }
	return Keypad{
		{{"←", calc.Backspace}, {"CE", calc.ClearEntry}, {"C", calc.Clear}},
		{{"MC", calc.MemoryClear}, d('7'), d('8'), d('9'), op(calc.Divide), {"√", calc.Sqrt}},
		{{"MR", calc.MemoryRecall}, d('4'), d('5'), d('6'), op(calc.Multiply), {"%", calc.Percent}},
		{{"MS", calc.MemoryStore}, d('1'), d('2'), d('3'), op(calc.Subtract), {"1/x", calc.Reciprocal}},
		{{"M+", calc.MemoryAdd}, d('0'), {"±", calc.Negate}, {".", calc.Dot}, op(calc.Add), {"=", calc.Evaluate}},
	}
}

// cursor is a position on a keypad.
type cursor struct{ row, col int }

// Button returns the button under c, clamping c into the grid.
func (k Keypad) Button(c cursor) Button {
	c = k.clamp(c)
	return k[c.row][c.col]
}

func (k Keypad) clamp(c cursor) cursor {
	if len(k) == 0 {
		return cursor{}
	}
	c.row = min(max(c.row, 0), len(k)-1)
	c.col = min(max(c.col, 0), len(k[c.row])-1)
	return c
}

// move shifts c by dr rows and dc columns, wrapping around the edges.
func (k Keypad) move(c cursor, dr, dc int) cursor {
	if len(k) == 0 {
		return cursor{}
	}
	c.row = (c.row + dr + len(k)) % len(k)
	width := len(k[c.row])
	if dc != 0 {
		c.col = (min(c.col, width-1) + dc + width) % width
	}
	return k.clamp(c)
}

// Find returns the position of the first button that sends ev.
func (k Keypad) Find(ev calc.Event) (cursor, bool) {
	for r, row := range k {
		for c, b := range row {
			if b.Event == ev {
				return cursor{r, c}, true
			}
		}
	}
	return cursor{}, false
}

func (k Keypad) render(p Palette, focus cursor, showFocus bool) string {
	focus = k.clamp(focus)
	rows := make([]string, 0, len(k))
	for r, row := range k {
		cells := make([]string, 0, len(row))
		for c, b := range row {
			focused := showFocus && focus.row == r && focus.col == c
			cells = append(cells, ButtonStyle(p, b.Event.Category(), focused).Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
