package storage

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var journalBucket = []byte("journal")

// BoltStore implements JournalStore on a bbolt file. Entries are JSON values
// keyed by their big-endian sequence number, so cursor order is append order.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory '%s': %w", dir, err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(journalBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close bolt database: %w", err)
	}
	return nil
}

func boltKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// JournalAppend stores entry after linking it to the current chain head.
func (s *BoltStore) JournalAppend(_ context.Context, entry JournalEntry) (JournalEntry, error) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(journalBucket)

		prev := genesisHash
		if _, v := b.Cursor().Last(); v != nil {
			var head JournalEntry
			if err := json.Unmarshal(v, &head); err != nil {
				return fmt.Errorf("failed to read journal head: %w", err)
			}
			prev = head.Hash
		}

		id, err := b.NextSequence()
		if err != nil {
			return err
		}

		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now()
		}
		entry.ID = int64(id)
		entry.Timestamp = entry.Timestamp.UTC()
		entry.PrevHash = prev
		entry.Hash = entryHash(entry)

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return b.Put(boltKey(id), data)
	})
	if err != nil {
		return JournalEntry{}, fmt.Errorf("failed to append journal entry: %w", err)
	}
	return entry, nil
}

// JournalList returns all entries in append order.
func (s *BoltStore) JournalList(_ context.Context) ([]JournalEntry, error) {
	var entries []JournalEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(journalBucket).ForEach(func(k, v []byte) error {
			var e JournalEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("failed to decode journal entry %d: %w", binary.BigEndian.Uint64(k), err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}

// JournalVerify recomputes the hash chain.
func (s *BoltStore) JournalVerify(ctx context.Context) (int, error) {
	entries, err := s.JournalList(ctx)
	if err != nil {
		return 0, err
	}
	return verifyChain(entries)
}
