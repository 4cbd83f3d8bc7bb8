package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/service"
)

// App is the terminal front end around a calculator engine.
type App struct {
	ctx     context.Context
	cfg     config.Config
	engine  *calc.Engine
	tape    *service.TapeService
	save    func(config.Config) error
	keys    keyMap
	help    help.Model
	pad     Keypad
	focus   cursor
	palette Palette
	styles  styles

	showTape    bool
	tapeEntries []repository.TapeEntry
	pending     []calc.Evaluation

	commandMode bool
	input       textinput.Model

	status    string
	statusErr bool
	width     int
}

// New builds the model. tape may be nil when the tape is disabled.
func New(ctx context.Context, cfg config.Config, tape *service.TapeService) *App {
	in := textinput.New()
	in.Prompt = ":"
	in.Placeholder = "command or keys"
	in.CharLimit = 64

	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		engine:   calc.New(),
		tape:     tape,
		save:     config.Save,
		keys:     newKeyMap(),
		help:     help.New(),
		pad:      DefaultKeypad(),
		input:    in,
		showTape: cfg.UI.ShowTape,
	}
	a.engine.OnEvaluate(func(ev calc.Evaluation) {
		a.pending = append(a.pending, ev)
	})
	a.setPalette(PaletteFor(cfg.UI.Theme))
	return a
}

// ConfigMsg delivers a reloaded configuration to a running program.
type ConfigMsg struct {
	Config config.Config
	Err    error
}

type statusMsg string

type errMsg struct{ error }

type tapeMsg []repository.TapeEntry

type tapeRecordedMsg struct {
	Entry repository.TapeEntry
}

type tapeClearedMsg struct{}

func (a *App) Init() tea.Cmd {
	if a.showTape {
		return a.loadTape()
	}
	return nil
}

// Engine exposes the calculator state for inspection.
func (a *App) Engine() *calc.Engine { return a.engine }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case tea.KeyMsg:
		if a.commandMode {
			return a.handleCommandKey(m)
		}
		return a, a.handleKey(m)
	case tapeMsg:
		a.tapeEntries = []repository.TapeEntry(m)
	case tapeRecordedMsg:
		a.tapeEntries = append([]repository.TapeEntry{m.Entry}, a.tapeEntries...)
		if n := a.tapeLimit(); len(a.tapeEntries) > n {
			a.tapeEntries = a.tapeEntries[:n]
		}
	case tapeClearedMsg:
		a.tapeEntries = nil
		a.setStatus("tape cleared", false)
	case ConfigMsg:
		if m.Err != nil {
			a.setStatus("config: "+m.Err.Error(), true)
			break
		}
		a.cfg = m.Config
		a.showTape = m.Config.UI.ShowTape
		a.setPalette(PaletteFor(m.Config.UI.Theme))
		a.setStatus("config reloaded", false)
		if a.showTape {
			return a, a.loadTape()
		}
	case statusMsg:
		a.setStatus(string(m), false)
	case errMsg:
		log.Printf("tui: %v", m.error)
		a.setStatus("error: "+m.Error(), true)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return nil
	case key.Matches(m, a.keys.Command):
		a.commandMode = true
		a.input.Reset()
		return a.input.Focus()
	case key.Matches(m, a.keys.Tape):
		return a.toggleTape()
	case key.Matches(m, a.keys.Up):
		a.focus = a.pad.move(a.focus, -1, 0)
		return nil
	case key.Matches(m, a.keys.Down):
		a.focus = a.pad.move(a.focus, 1, 0)
		return nil
	case key.Matches(m, a.keys.Left):
		a.focus = a.pad.move(a.focus, 0, -1)
		return nil
	case key.Matches(m, a.keys.Right):
		a.focus = a.pad.move(a.focus, 0, 1)
		return nil
	case key.Matches(m, a.keys.Press):
		return a.apply(a.pad.Button(a.focus).Event)
	}
	if ev, ok := a.keys.eventFor(m); ok {
		return a.apply(ev)
	}
	return nil
}

func (a *App) handleCommandKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		a.commandMode = false
		a.input.Blur()
		return a, nil
	case tea.KeyEnter:
		line := a.input.Value()
		a.commandMode = false
		a.input.Blur()
		a.input.Reset()
		return a, a.runCommandLine(line)
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	return a, cmd
}

// apply feeds ev to the engine and moves the keypad focus to the matching button.
func (a *App) apply(ev calc.Event) tea.Cmd {
	a.engine.Apply(ev)
	if c, ok := a.pad.Find(ev); ok {
		a.focus = c
	}
	a.status = ""
	return a.flushEvaluations()
}

func (a *App) flushEvaluations() tea.Cmd {
	evals := a.pending
	a.pending = nil
	if a.tape == nil {
		return nil
	}
	switch len(evals) {
	case 0:
		return nil
	case 1:
		return a.recordCmd(evals[0])
	}
	cmds := make([]tea.Cmd, 0, len(evals))
	for _, ev := range evals {
		cmds = append(cmds, a.recordCmd(ev))
	}
	return tea.Sequence(cmds...)
}

func (a *App) recordCmd(ev calc.Evaluation) tea.Cmd {
	tape := a.tape
	return func() tea.Msg {
		entry, err := tape.Record(a.ctx, ev)
		if err != nil {
			return errMsg{err}
		}
		return tapeRecordedMsg{Entry: entry}
	}
}

func (a *App) loadTape() tea.Cmd {
	if a.tape == nil {
		return nil
	}
	tape, limit := a.tape, a.tapeLimit()
	return func() tea.Msg {
		entries, err := tape.Recent(a.ctx, limit)
		if err != nil {
			return errMsg{err}
		}
		return tapeMsg(entries)
	}
}

func (a *App) tapeLimit() int {
	if a.cfg.Tape.Limit > 0 {
		return a.cfg.Tape.Limit
	}
	return 50
}

func (a *App) toggleTape() tea.Cmd {
	a.showTape = !a.showTape
	if a.showTape {
		return a.loadTape()
	}
	return nil
}

func (a *App) clearTapeCmd() tea.Cmd {
	if a.tape == nil {
		return errCmd(fmt.Errorf("tape disabled"))
	}
	tape := a.tape
	return func() tea.Msg {
		if err := tape.Clear(a.ctx); err != nil {
			return errMsg{err}
		}
		return tapeClearedMsg{}
	}
}

func (a *App) setThemeCmd(args []string) tea.Cmd {
	if len(args) != 1 || !config.ValidTheme(args[0]) {
		return errCmd(fmt.Errorf("usage: theme <%s>", strings.Join(config.Themes, "|")))
	}
	a.cfg.UI.Theme = args[0]
	a.setPalette(PaletteFor(args[0]))
	cfg, save := a.cfg, a.save
	return func() tea.Msg {
		if save == nil {
			return statusMsg("theme " + cfg.UI.Theme)
		}
		if err := save(cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg("theme " + cfg.UI.Theme + " saved")
	}
}

func (a *App) setPalette(p Palette) {
	a.palette = p
	a.styles = newStyles(p)
	a.input.PromptStyle = a.styles.prompt
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}
