// Package replay plays a key script through a fresh engine and renders each
// step in place on a terminal.
package replay

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gosuri/uilive"

	"github.com/jask/jaskcalc/internal/calc"
)

// Step is the engine display after one key of a replay.
type Step struct {
	Index   int
	Key     string
	Display string
}

// Player replays events into its engine.
type Player struct {
	Engine *calc.Engine
	Delay  time.Duration

	writer *uilive.Writer
}

// New builds a player that redraws on w after every key.
func New(w io.Writer, delay time.Duration) *Player {
	lw := uilive.New()
	lw.Out = w
	return &Player{Engine: calc.New(), Delay: delay, writer: lw}
}

// Run applies events one at a time and returns the final display.
// It stops early with ctx.Err() when ctx is cancelled.
func (p *Player) Run(ctx context.Context, events []calc.Event) (string, error) {
	for i, ev := range events {
		if i > 0 && p.Delay > 0 {
			select {
			case <-ctx.Done():
				return p.display(), ctx.Err()
			case <-time.After(p.Delay):
			}
		} else if err := ctx.Err(); err != nil {
			return p.display(), err
		}

		p.Engine.Apply(ev)
		if err := p.render(Step{Index: i + 1, Key: ev.String(), Display: p.display()}, len(events)); err != nil {
			return p.display(), err
		}
	}
	return p.display(), nil
}

// display drops the padding left by an empty operator and operand.
func (p *Player) display() string {
	return strings.TrimRight(p.Engine.Display(), " ")
}

func (p *Player) render(s Step, total int) error {
	fmt.Fprintf(p.writer, "[%d/%d] %-10s %s\n", s.Index, total, s.Key, s.Display)
	if err := p.writer.Flush(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}

// Script parses keys and replays them on w.
func Script(ctx context.Context, w io.Writer, keys string, delay time.Duration) (string, error) {
	events, err := calc.ParseKeys(keys)
	if err != nil {
		return "", err
	}
	return New(w, delay).Run(ctx, events)
}
