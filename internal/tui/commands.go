package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
)

const maxSuggestDistance = 2

type command struct {
	Name string
	Help string
	Run  func(a *App, args []string) tea.Cmd
}

var commandHelp = map[string]string{
	"neg":  "toggle sign",
	"c":    "clear",
	"ce":   "clear entry",
	"bs":   "backspace",
	"mc":   "memory clear",
	"mr":   "memory recall",
	"ms":   "memory store",
	"m+":   "memory add",
	"sqrt": "square root",
	"inv":  "reciprocal",
	"pct":  "percent",
}

func commandTable() map[string]command {
	cmds := map[string]command{
		"tape": {Name: "tape", Help: "toggle the tape panel", Run: func(a *App, _ []string) tea.Cmd {
			return a.toggleTape()
		}},
		"clear-tape": {Name: "clear-tape", Help: "erase the tape", Run: func(a *App, _ []string) tea.Cmd {
			return a.clearTapeCmd()
		}},
		"theme": {Name: "theme", Help: "theme <" + strings.Join(config.Themes, "|") + ">", Run: func(a *App, args []string) tea.Cmd {
			return a.setThemeCmd(args)
		}},
		"help": {Name: "help", Help: "toggle full help", Run: func(a *App, _ []string) tea.Cmd {
			a.help.ShowAll = !a.help.ShowAll
			return nil
		}},
		"quit": {Name: "quit", Help: "exit", Run: func(a *App, _ []string) tea.Cmd {
			return tea.Quit
		}},
	}
	for _, name := range calc.NamedKeys() {
		ev, _ := calc.LookupNamedKey(name)
		cmds[name] = command{Name: name, Help: commandHelp[name], Run: func(a *App, _ []string) tea.Cmd {
			return a.apply(ev)
		}}
	}
	return cmds
}

// CommandNames lists every command accepted on the command line, sorted.
func CommandNames() []string {
	table := commandTable()
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// suggestCommand returns the closest known command to name.
func suggestCommand(name string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, n := range CommandNames() {
		if d := levenshtein.ComputeDistance(name, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, best != ""
}

// runCommandLine executes one line typed after ':'. A line that is not a
// command is tried as a key script, e.g. "{mr}5+".
func (a *App) runCommandLine(line string) tea.Cmd {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	if cmd, ok := commandTable()[name]; ok {
		return cmd.Run(a, fields[1:])
	}
	events, err := calc.ParseKeys(line)
	if err == nil {
		var cmds []tea.Cmd
		for _, ev := range events {
			cmds = append(cmds, a.apply(ev))
		}
		return tea.Batch(cmds...)
	}
	if s, ok := suggestCommand(name); ok {
		return errCmd(fmt.Errorf("unknown command %q, did you mean %q?", name, s))
	}
	return errCmd(fmt.Errorf("unknown command %q", name))
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}
