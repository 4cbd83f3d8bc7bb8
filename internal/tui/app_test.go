package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/service"
)

func testConfig() config.Config {
	return config.Config{
		UI:   config.UIConfig{Theme: "mocha"},
		Tape: config.TapeConfig{Enabled: true, Limit: 50},
	}
}

func newTestApp(t *testing.T, tape *service.TapeService) *App {
	t.Helper()
	a := New(context.Background(), testConfig(), tape)
	a.save = nil
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeKeys sends each rune of s as a key press and returns the last command.
func typeKeys(a *App, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		_, cmd = a.Update(runes(string(r)))
	}
	return cmd
}

func TestKeyboardEvaluation(t *testing.T) {
	a := newTestApp(t, nil)
	typeKeys(a, "5+3")
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, "8", a.Engine().Display())
	require.Contains(t, a.View(), "8")

	want, ok := a.pad.Find(calc.Evaluate)
	require.True(t, ok)
	require.Equal(t, want, a.focus)
}

func TestKeyboardClearKeys(t *testing.T) {
	a := newTestApp(t, nil)
	typeKeys(a, "12+34")

	a.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "3", a.Engine().Right())

	a.Update(tea.KeyMsg{Type: tea.KeyDelete})
	require.Empty(t, a.Engine().Right())

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, calc.State{Left: "0"}, a.Engine().Snapshot())
}

func TestKeyboardMemoryAndSpecials(t *testing.T) {
	a := newTestApp(t, nil)
	typeKeys(a, "42")
	require.NotContains(t, a.renderHeader(), "M")
	a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Contains(t, a.renderHeader(), "M")

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, "42", a.Engine().Left())

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Zero(t, a.Engine().Memory())
	require.NotContains(t, a.renderHeader(), "M")

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	typeKeys(a, "9r")
	require.Equal(t, "3", a.Engine().Left())
	typeKeys(a, "n")
	require.Equal(t, "-3", a.Engine().Left())
}

func TestDivideByZeroShowsError(t *testing.T) {
	a := newTestApp(t, nil)
	typeKeys(a, "7/0=")

	view := a.View()
	require.Contains(t, view, calc.ErrDivideByZeroText)
	require.Contains(t, a.renderHeader(), "E")

	typeKeys(a, "9")
	require.Equal(t, "9", a.Engine().Left())
	require.NotContains(t, a.renderHeader(), "E")
}

func TestKeypadNavigationAndPress(t *testing.T) {
	a := newTestApp(t, nil)
	require.Equal(t, "←", a.pad.Button(a.focus).Label)

	a.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "MC", a.pad.Button(a.focus).Label)
	a.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "7", a.pad.Button(a.focus).Label)

	a.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Equal(t, "7", a.Engine().Left())

	a.Update(runes("k"))
	require.Equal(t, "CE", a.pad.Button(a.focus).Label)
}

func TestCommandLineRunsNamedKey(t *testing.T) {
	a := newTestApp(t, nil)
	typeKeys(a, "9")

	a.Update(runes(":"))
	require.True(t, a.commandMode)
	typeKeys(a, "sqrt")
	require.Equal(t, "9", a.Engine().Left())

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.False(t, a.commandMode)
	require.Equal(t, "3", a.Engine().Left())
}

func TestCommandLineEscapeCancels(t *testing.T) {
	a := newTestApp(t, nil)
	a.Update(runes(":"))
	typeKeys(a, "5")
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.False(t, a.commandMode)
	require.Equal(t, "0", a.Engine().Left())
}

func TestCommandLineKeyScript(t *testing.T) {
	a := newTestApp(t, nil)
	a.runCommandLine("12+7=")
	require.Equal(t, "19", a.Engine().Display())
}

func TestCommandLineSuggestsClosest(t *testing.T) {
	a := newTestApp(t, nil)
	cmd := a.runCommandLine("sqr")
	require.NotNil(t, cmd)
	a.Update(cmd())

	require.True(t, a.statusErr)
	require.Contains(t, a.status, `did you mean "sqrt"`)

	a.Update(a.runCommandLine("xyzzy")())
	require.Equal(t, `error: unknown command "xyzzy"`, a.status)
}

func TestThemeCommandSaves(t *testing.T) {
	a := newTestApp(t, nil)
	var saved config.Config
	a.save = func(c config.Config) error {
		saved = c
		return nil
	}

	a.Update(a.runCommandLine("theme latte")())
	require.Equal(t, "latte", a.palette.Name)
	require.Equal(t, "latte", saved.UI.Theme)
	require.Equal(t, "theme latte saved", a.status)

	a.Update(a.runCommandLine("theme neon")())
	require.True(t, a.statusErr)
	require.Equal(t, "latte", a.palette.Name)
}

func TestConfigReload(t *testing.T) {
	a := newTestApp(t, nil)
	cfg := testConfig()
	cfg.UI.Theme = "latte"
	cfg.UI.ShowTape = true

	a.Update(ConfigMsg{Config: cfg})
	require.Equal(t, "latte", a.palette.Name)
	require.True(t, a.showTape)
	require.Contains(t, a.View(), "disabled")
}

func TestQuit(t *testing.T) {
	a := newTestApp(t, nil)
	_, cmd := a.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTapeRecordsAndRenders(t *testing.T) {
	db, err := database.Setup(filepath.Join(t.TempDir(), "tape.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	tape := service.NewTapeService(db)

	a := newTestApp(t, tape)
	typeKeys(a, "5+3")
	cmd := typeKeys(a, "=")
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, tapeRecordedMsg{}, msg)
	a.Update(msg)

	_, cmd = a.Update(runes("t"))
	require.True(t, a.showTape)
	require.NotNil(t, cmd)
	a.Update(cmd())
	require.Len(t, a.tapeEntries, 1)

	view := a.View()
	require.Contains(t, view, "Tape")
	require.Contains(t, view, "5 + 3")
	require.Contains(t, view, "= 8")

	a.Update(a.runCommandLine("clear-tape")())
	require.Empty(t, a.tapeEntries)
	require.Equal(t, "tape cleared", a.status)
}

func TestClearTapeWithoutTape(t *testing.T) {
	a := newTestApp(t, nil)
	a.Update(a.runCommandLine("clear-tape")())
	require.Equal(t, "error: tape disabled", a.status)
}

func TestFitDisplay(t *testing.T) {
	require.Equal(t, "123", fitDisplay("123", 5))
	require.Equal(t, "…345", fitDisplay("12345", 4))
}
