package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
)

// TapeService records completed evaluations, like the paper roll of a desk calculator.
type TapeService struct {
	DB        *sql.DB
	Entries   *repository.TapeRepo
	SessionID string
}

// NewTapeService wires a tape for db under a fresh session id.
func NewTapeService(db *sql.DB) *TapeService {
	return &TapeService{
		DB:        db,
		Entries:   repository.NewTapeRepo(db),
		SessionID: uuid.NewString(),
	}
}

// Record appends ev to the tape and returns the stored entry.
func (s *TapeService) Record(ctx context.Context, ev calc.Evaluation) (repository.TapeEntry, error) {
	e := repository.TapeEntry{
		ID:         uuid.NewString(),
		SessionID:  s.SessionID,
		Expression: ev.Expression(),
		Result:     ev.Result,
		IsError:    ev.DivByZero,
		CreatedAt:  database.Now(),
	}
	if err := s.Entries.Append(ctx, e); err != nil {
		return repository.TapeEntry{}, fmt.Errorf("record tape entry: %w", err)
	}
	return e, nil
}

// Recent lists up to n entries, newest first.
func (s *TapeService) Recent(ctx context.Context, n int) ([]repository.TapeEntry, error) {
	entries, err := s.Entries.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("list tape: %w", err)
	}
	return entries, nil
}

// Clear wipes the tape for every session.
func (s *TapeService) Clear(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("tape: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		return s.Entries.ClearTx(ctx, tx)
	}); err != nil {
		return fmt.Errorf("clear tape: %w", err)
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
