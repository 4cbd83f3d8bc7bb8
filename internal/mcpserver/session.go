// Package mcpserver exposes a calculator engine as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/service"
)

// Session is one engine shared by every client of a server. Events from
// concurrent tool calls are applied one at a time.
type Session struct {
	mu      sync.Mutex
	engine  *calc.Engine
	tape    *service.TapeService
	pending []calc.Evaluation
}

// NewSession starts a session. tape may be nil.
func NewSession(tape *service.TapeService) *Session {
	s := &Session{tape: tape}
	s.resetLocked()
	return s
}

func (s *Session) resetLocked() {
	s.engine = calc.New()
	s.pending = nil
	s.engine.OnEvaluate(func(ev calc.Evaluation) {
		s.pending = append(s.pending, ev)
	})
}

// Press applies events and returns the resulting display.
func (s *Session) Press(ctx context.Context, events []calc.Event) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.ApplyAll(events)
	s.recordLocked(ctx)
	return display(s.engine)
}

// Display returns the current display.
func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return display(s.engine)
}

// Memory returns the memory register as text.
func (s *Session) Memory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strconv.FormatFloat(s.engine.Memory(), 'f', -1, 64)
}

// Reset discards the engine, memory included.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Tape lists recent tape entries, newest first.
func (s *Session) Tape(ctx context.Context, limit int) ([]repository.TapeEntry, error) {
	if s.tape == nil {
		return nil, errTapeDisabled
	}
	return s.tape.Recent(ctx, limit)
}

// recordLocked writes pending evaluations to the tape. A tape failure is
// logged and never affects the engine.
func (s *Session) recordLocked(ctx context.Context) {
	evals := s.pending
	s.pending = nil
	if s.tape == nil {
		return
	}
	for _, ev := range evals {
		if _, err := s.tape.Record(ctx, ev); err != nil {
			log.Printf("mcp: %v", err)
		}
	}
}

func display(e *calc.Engine) string {
	return strings.TrimRight(e.Display(), " ")
}
