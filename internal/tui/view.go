package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	displayInner = 32
	tapeRows     = 12
)

func (a *App) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		a.renderDisplay(),
		a.pad.render(a.palette, a.focus, true),
	)
	if a.showTape {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, a.renderTape())
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if a.commandMode {
		b.WriteString(a.input.View())
	} else {
		b.WriteString(a.renderStatus())
	}
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

func (a *App) renderHeader() string {
	var flags []string
	if a.engine.Memory() != 0 {
		flags = append(flags, "M")
	}
	if a.engine.Errored() {
		flags = append(flags, "E")
	}
	title := a.styles.title.Render("jaskcalc")
	if len(flags) == 0 {
		return title
	}
	return title + " " + a.styles.indicator.Render(strings.Join(flags, " "))
}

func (a *App) renderDisplay() string {
	text := fitDisplay(strings.TrimRight(a.engine.Display(), " "), displayInner)
	return DisplayStyle(a.palette, a.engine.Errored()).Width(displayInner + 2).Render(text)
}

// fitDisplay keeps the tail of s when it is wider than w.
func fitDisplay(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return "…" + string(r[len(r)-w+1:])
}

func (a *App) renderTape() string {
	lines := []string{a.styles.tapeTitle.Render("Tape")}
	switch {
	case a.tape == nil:
		lines = append(lines, a.styles.muted.Render("disabled"))
	case len(a.tapeEntries) == 0:
		lines = append(lines, a.styles.muted.Render("empty"))
	default:
		for i, e := range a.tapeEntries {
			if i == tapeRows {
				lines = append(lines, a.styles.muted.Render("…"))
				break
			}
			result := "= " + e.Result
			if e.IsError {
				result = a.styles.tapeError.Render(result)
			}
			lines = append(lines, a.styles.muted.Render(e.Expression), result)
		}
	}
	return a.styles.tapeBox.Render(strings.Join(lines, "\n"))
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return a.styles.statusErr.Render(a.status)
	}
	return a.styles.status.Render(a.status)
}
