package tui

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/calc"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func paletteColors(p Palette) []lipgloss.Color {
	return []lipgloss.Color{
		p.Text, p.Subtext, p.Overlay, p.Surface, p.Base, p.Mantle,
		p.Focus, p.Success, p.Error,
		p.Number, p.Memory, p.Operator, p.Special, p.Equal, p.Clear,
	}
}

func TestPaletteColorsAreValidHex(t *testing.T) {
	for _, p := range Palettes() {
		for _, c := range paletteColors(p) {
			if !hexColorRegex.MatchString(string(c)) {
				t.Errorf("%s: invalid hex color: %q", p.Name, c)
			}
		}
	}
}

func TestCategoryColorsAreDistinct(t *testing.T) {
	categories := []calc.Category{
		calc.CategoryNumber, calc.CategoryMemory, calc.CategoryOperator,
		calc.CategorySpecial, calc.CategoryEqual, calc.CategoryClear,
	}
	for _, p := range Palettes() {
		seen := map[lipgloss.Color]calc.Category{}
		for _, c := range categories {
			color := CategoryColor(p, c)
			if prev, ok := seen[color]; ok {
				t.Errorf("%s: %s and %s share color %q", p.Name, prev, c, color)
			}
			seen[color] = c
		}
	}
}

func TestPaletteFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"mocha", "mocha"},
		{"latte", "latte"},
		{"", "mocha"},
		{"neon", "mocha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaletteFor(tt.name).Name; got != tt.want {
				t.Errorf("PaletteFor(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
