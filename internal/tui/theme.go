package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/calc"
)

// ---------------------------------------------------------------------------
// Catppuccin palettes — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

// Palette is the set of colors a view is rendered with.
type Palette struct {
	Name string

	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Overlay  lipgloss.Color
	Surface  lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Focus    lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Number   lipgloss.Color
	Memory   lipgloss.Color
	Operator lipgloss.Color
	Special  lipgloss.Color
	Equal    lipgloss.Color
	Clear    lipgloss.Color
}

var mocha = Palette{
	Name:     "mocha",
	Text:     "#cdd6f4",
	Subtext:  "#a6adc8",
	Overlay:  "#6c7086",
	Surface:  "#313244",
	Base:     "#1e1e2e",
	Mantle:   "#181825",
	Focus:    "#b4befe", // lavender
	Success:  "#a6e3a1", // green
	Error:    "#f38ba8", // red
	Number:   "#45475a", // surface1
	Memory:   "#94e2d5", // teal
	Operator: "#fab387", // peach
	Special:  "#cba6f7", // mauve
	Equal:    "#89b4fa", // blue
	Clear:    "#eba0ac", // maroon
}

var latte = Palette{
	Name:     "latte",
	Text:     "#4c4f69",
	Subtext:  "#6c6f85",
	Overlay:  "#9ca0b0",
	Surface:  "#ccd0da",
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
	Focus:    "#7287fd",
	Success:  "#40a02b",
	Error:    "#d20f39",
	Number:   "#bcc0cc",
	Memory:   "#179299",
	Operator: "#fe640b",
	Special:  "#8839ef",
	Equal:    "#1e66f5",
	Clear:    "#e64553",
}

// PaletteFor returns the palette with the given name, falling back to mocha.
func PaletteFor(name string) Palette {
	if name == latte.Name {
		return latte
	}
	return mocha
}

// Palettes returns every built-in palette.
func Palettes() []Palette {
	return []Palette{mocha, latte}
}

// CategoryColor is the fill color for buttons of category c.
func CategoryColor(p Palette, c calc.Category) lipgloss.Color {
	switch c {
	case calc.CategoryMemory:
		return p.Memory
	case calc.CategoryOperator:
		return p.Operator
	case calc.CategorySpecial:
		return p.Special
	case calc.CategoryEqual:
		return p.Equal
	case calc.CategoryClear:
		return p.Clear
	}
	return p.Number
}

const buttonWidth = 5

// ButtonStyle is the style of a keypad button of category c.
func ButtonStyle(p Palette, c calc.Category, focused bool) lipgloss.Style {
	fg := p.Base
	if c == calc.CategoryNumber {
		fg = p.Text
	}
	s := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(fg).
		Background(CategoryColor(p, c)).
		MarginRight(1)
	if focused {
		s = s.Bold(true).Underline(true).Foreground(p.Mantle).Background(p.Focus)
	}
	return s
}

// DisplayStyle frames the calculator display.
func DisplayStyle(p Palette, errored bool) lipgloss.Style {
	fg := p.Text
	if errored {
		fg = p.Error
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Foreground(fg).
		Align(lipgloss.Right).
		Padding(0, 1)
}

// styles derived from a palette
type styles struct {
	title     lipgloss.Style
	indicator lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
	tapeBox   lipgloss.Style
	tapeTitle lipgloss.Style
	tapeError lipgloss.Style
	muted     lipgloss.Style
	prompt    lipgloss.Style
}

func newStyles(p Palette) styles {
	return styles{
		title:     lipgloss.NewStyle().Foreground(p.Focus).Bold(true),
		indicator: lipgloss.NewStyle().Foreground(p.Memory).Bold(true),
		status:    lipgloss.NewStyle().Foreground(p.Success),
		statusErr: lipgloss.NewStyle().Foreground(p.Error),
		tapeBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Overlay).Padding(0, 1).MarginLeft(2),
		tapeTitle: lipgloss.NewStyle().Foreground(p.Subtext).Bold(true),
		tapeError: lipgloss.NewStyle().Foreground(p.Error),
		muted:     lipgloss.NewStyle().Foreground(p.Subtext),
		prompt:    lipgloss.NewStyle().Foreground(p.Focus),
	}
}
