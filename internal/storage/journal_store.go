package storage

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// genesisHash is the previous hash of the first entry.
const genesisHash = ""

const timeLayout = time.RFC3339Nano

// entryHash is BLAKE2b-256 over the previous hash and the entry fields.
func entryHash(e JournalEntry) string {
	h, _ := blake2b.New256(nil)
	for _, field := range []string{
		e.PrevHash,
		e.RunID,
		e.Timestamp.UTC().Format(timeLayout),
		e.Event,
		e.Classroom,
		e.Student,
		e.Details,
	} {
		h.Write([]byte(field))
		h.Write([]byte{0x1f})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// JournalAppend stores entry after linking it to the current chain head.
func (s *SQLiteStore) JournalAppend(ctx context.Context, entry JournalEntry) (JournalEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JournalEntry{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	prev := genesisHash
	err = tx.QueryRowContext(ctx, "SELECT hash FROM journal ORDER BY id DESC LIMIT 1").Scan(&prev)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return JournalEntry{}, fmt.Errorf("failed to read journal head: %w", err)
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.Timestamp = entry.Timestamp.UTC()
	entry.PrevHash = prev
	entry.Hash = entryHash(entry)

	res, err := tx.ExecContext(ctx,
		`INSERT INTO journal (run_id, created_at, event, classroom, student, details, prev_hash, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID, entry.Timestamp.Format(timeLayout), entry.Event, entry.Classroom,
		entry.Student, entry.Details, entry.PrevHash, entry.Hash)
	if err != nil {
		return JournalEntry{}, fmt.Errorf("failed to append journal entry: %w", err)
	}
	if entry.ID, err = res.LastInsertId(); err != nil {
		return JournalEntry{}, fmt.Errorf("failed to read journal entry id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return JournalEntry{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return entry, nil
}

// JournalList returns all entries in append order.
func (s *SQLiteStore) JournalList(ctx context.Context) ([]JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, created_at, event, classroom, student, details, prev_hash, hash
		 FROM journal ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var created string
		if err := rows.Scan(&e.ID, &e.RunID, &created, &e.Event, &e.Classroom,
			&e.Student, &e.Details, &e.PrevHash, &e.Hash); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		if e.Timestamp, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("journal entry %d has a bad timestamp: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}

// JournalVerify recomputes the hash chain.
func (s *SQLiteStore) JournalVerify(ctx context.Context) (int, error) {
	entries, err := s.JournalList(ctx)
	if err != nil {
		return 0, err
	}

	return verifyChain(entries)
}
