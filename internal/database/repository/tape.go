package repository

import (
	"context"
	"database/sql"
)

// TapeRepo handles tape entries.
type TapeRepo struct {
	db *sql.DB
}

func NewTapeRepo(db *sql.DB) *TapeRepo { return &TapeRepo{db: db} }

func (r *TapeRepo) Append(ctx context.Context, e TapeEntry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO tape_entries(id, session_id, expression, result, is_error, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.SessionID, e.Expression, e.Result, e.IsError, e.CreatedAt)
	return err
}

// Recent returns up to limit entries, newest first.
func (r *TapeRepo) Recent(ctx context.Context, limit int) ([]TapeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, expression, result, is_error, created_at
	FROM tape_entries
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TapeEntry
	for rows.Next() {
		var e TapeEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Expression, &e.Result, &e.IsError, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *TapeRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tape_entries`).Scan(&n)
	return n, err
}

// ClearTx deletes every entry inside tx.
func (r *TapeRepo) ClearTx(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM tape_entries`)
	return err
}
