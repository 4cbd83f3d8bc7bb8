package repository

import "time"

// TapeEntry is one completed evaluation on the tape.
type TapeEntry struct {
	ID         string
	SessionID  string
	Expression string
	Result     string
	IsError    bool
	CreatedAt  time.Time
}
