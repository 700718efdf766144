// Package storage persists the command journal: an append-only, hash
// chained record of every registry mutation. Classroom state itself is never
// loaded back from it.
package storage

import (
	"context"
	"fmt"
	"time"
)

// JournalEntry is one recorded registry mutation.
type JournalEntry struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"created_at"`
	Event     string    `json:"event"`
	Classroom string    `json:"classroom"`
	Student   string    `json:"student,omitempty"`
	Details   string    `json:"details,omitempty"`
	PrevHash  string    `json:"prev_hash"`
	Hash      string    `json:"hash"`
}

// JournalStore defines the storage operations for the journal.
type JournalStore interface {
	// JournalAppend links entry to the current chain head and stores it.
	JournalAppend(ctx context.Context, entry JournalEntry) (JournalEntry, error)
	// JournalList returns all entries in append order.
	JournalList(ctx context.Context) ([]JournalEntry, error)
	// JournalVerify recomputes the chain and returns the number of entries
	// checked. A broken link is reported as *ChainError.
	JournalVerify(ctx context.Context) (int, error)
	Close() error
}

// Journal drivers accepted by Open.
const (
	DriverSQLite3 = "sqlite3"
	DriverSQLite  = "sqlite"
	DriverBolt    = "bolt"
)

// Open opens the journal at path with the named driver.
func Open(driver, path string) (JournalStore, error) {
	switch driver {
	case DriverSQLite3, DriverSQLite:
		return NewSQLiteStore(driver, path)
	case DriverBolt:
		return NewBoltStore(path)
	default:
		return nil, fmt.Errorf("unsupported journal driver: %s", driver)
	}
}

// verifyChain walks entries from the first one and reports the first broken
// link.
func verifyChain(entries []JournalEntry) (int, error) {
	prev := genesisHash
	for i, e := range entries {
		if e.PrevHash != prev {
			return i, &ChainError{ID: e.ID, Reason: "previous hash does not match the preceding entry"}
		}
		if entryHash(e) != e.Hash {
			return i, &ChainError{ID: e.ID, Reason: "content does not match its hash"}
		}
		prev = e.Hash
	}
	return len(entries), nil
}

// ChainError reports the first journal entry whose hash does not match.
type ChainError struct {
	ID     int64
	Reason string
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("journal entry %d: %s", e.ID, e.Reason)
}
