package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"vclassroom/local-app/internal/event"
	"vclassroom/local-app/internal/log"
)

// newTestStore uses the pure-Go driver so the tests do not need cgo.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore("sqlite", filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewSQLiteStore_RejectsUnknownDriver(t *testing.T) {
	_, err := NewSQLiteStore("postgres", filepath.Join(t.TempDir(), "journal.db"))
	assert.Error(t, err)
}

func TestJournalAppend_ChainsEntries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	first, err := store.JournalAppend(ctx, JournalEntry{RunID: "run-1", Timestamp: at, Event: "classroom_added", Classroom: "Math"})
	require.NoError(t, err)
	second, err := store.JournalAppend(ctx, JournalEntry{RunID: "run-1", Timestamp: at, Event: "student_enrolled", Classroom: "Math", Student: "S1"})
	require.NoError(t, err)

	assert.Equal(t, genesisHash, first.PrevHash)
	assert.Equal(t, first.Hash, second.PrevHash)
	assert.Len(t, first.Hash, 64)
	assert.Greater(t, second.ID, first.ID)

	entries, err := store.JournalList(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])

	n, err := store.JournalVerify(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestJournalVerify_DetectsTampering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, student := range []string{"S1", "S2", "S3"} {
		_, err := store.JournalAppend(ctx, JournalEntry{RunID: "run-1", Event: "student_enrolled", Classroom: "Math", Student: student})
		require.NoError(t, err)
	}

	_, err := store.db.Exec("UPDATE journal SET student = 'S9' WHERE id = 2")
	require.NoError(t, err)

	n, err := store.JournalVerify(ctx)
	var chainErr *ChainError
	require.ErrorAs(t, err, &chainErr)
	assert.Equal(t, int64(2), chainErr.ID)
	assert.Equal(t, 1, n)
}

func TestJournalVerify_Empty(t *testing.T) {
	store := newTestStore(t)

	n, err := store.JournalVerify(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestJournalRecorder_RecordsEvents(t *testing.T) {
	store := newTestStore(t)
	em := event.NewEventManager(log.Discard())
	recorder := NewJournalRecorder(store, log.Discard())
	recorder.Attach(em)

	em.Publish(event.Event{Type: event.ClassroomAdded, Data: event.Payload{Classroom: "Math"}})
	em.Publish(event.Event{Type: event.AssignmentSubmitted, Data: event.Payload{Classroom: "Math", Student: "S1", Details: "Homework 1"}})

	entries, err := store.JournalList(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "classroom_added", entries[0].Event)
	assert.Equal(t, "assignment_submitted", entries[1].Event)
	assert.Equal(t, "Homework 1", entries[1].Details)
	for _, e := range entries {
		assert.Equal(t, recorder.RunID(), e.RunID)
	}
	assert.NotEmpty(t, recorder.RunID())
}

func TestJournalRecorder_SwallowsStoreErrors(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	recorder := NewJournalRecorder(store, log.Discard())
	assert.NotPanics(t, func() {
		recorder.Record(event.Event{Type: event.ClassroomAdded, Data: event.Payload{Classroom: "Math"}})
	})
}

func TestJournalExportXLSX(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, err := store.JournalAppend(ctx, JournalEntry{RunID: "run-1", Event: "classroom_added", Classroom: "Math"})
	require.NoError(t, err)
	_, err = store.JournalAppend(ctx, JournalEntry{RunID: "run-1", Event: "assignment_scheduled", Classroom: "Math", Details: "Essay on rivers"})
	require.NoError(t, err)

	entries, err := store.JournalList(ctx)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "journal.xlsx")
	require.NoError(t, JournalExportXLSX(entries, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(journalSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Classroom", rows[0][4])
	assert.Equal(t, "classroom_added", rows[1][3])
	assert.Equal(t, "Essay on rivers", rows[2][6])
}
