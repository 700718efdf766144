package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vclassroom/local-app/internal/event"
	"vclassroom/local-app/internal/log"
)

// JournalRecorder appends every registry event to a JournalStore. Failures
// are logged and never reach the command loop.
type JournalRecorder struct {
	store  JournalStore
	runID  string
	logger *log.Logger
	now    func() time.Time
}

// NewJournalRecorder creates a recorder tagged with a fresh run id.
func NewJournalRecorder(store JournalStore, logger *log.Logger) *JournalRecorder {
	return &JournalRecorder{
		store:  store,
		runID:  uuid.NewString(),
		logger: logger,
		now:    time.Now,
	}
}

// RunID identifies the entries written by this process.
func (r *JournalRecorder) RunID() string {
	return r.runID
}

// Attach subscribes the recorder to every registry event.
func (r *JournalRecorder) Attach(em *event.EventManager) {
	em.SubscribeAll(r.Record)
}

func (r *JournalRecorder) Record(e event.Event) {
	ctx := context.Background()
	entry, err := r.store.JournalAppend(ctx, JournalEntry{
		RunID:     r.runID,
		Timestamp: r.now(),
		Event:     e.Type.String(),
		Classroom: e.Data.Classroom,
		Student:   e.Data.Student,
		Details:   e.Data.Details,
	})
	if err != nil {
		r.logger.Error(ctx, "Failed to append journal entry", log.Fields{"event": e.Type.String(), "error": err})
		return
	}
	r.logger.Debug(ctx, "Journal entry appended", log.Fields{"id": entry.ID, "event": entry.Event})
}
