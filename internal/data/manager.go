// Package data provides the classroom registry. It owns every classroom and
// exposes one operation per user-facing command.
package data

import (
	"context"
	"sync"

	"vclassroom/local-app/internal/event"
	"vclassroom/local-app/internal/log"
	"vclassroom/local-app/internal/models"
)

// ClassroomManager owns all classrooms keyed by name. Listing follows
// insertion order.
type ClassroomManager struct {
	mu         sync.Mutex
	classrooms map[string]*models.Classroom
	order      []string
	events     *event.EventManager
	logger     *log.Logger
}

// NewClassroomManager creates an empty registry. events may be nil.
func NewClassroomManager(events *event.EventManager, logger *log.Logger) *ClassroomManager {
	return &ClassroomManager{
		classrooms: make(map[string]*models.Classroom),
		order:      make([]string, 0),
		events:     events,
		logger:     logger,
	}
}

// ClassroomGet returns a snapshot of the classroom registered under name.
// Changes to the snapshot do not reach the registry.
func (m *ClassroomManager) ClassroomGet(name string) (*models.Classroom, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.classrooms[name]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// ClassroomNames returns the registered names in insertion order.
func (m *ClassroomManager) ClassroomNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

func (m *ClassroomManager) publish(t event.EventType, payload event.Payload) {
	if m.events == nil {
		return
	}
	m.events.Publish(event.Event{Type: t, Data: payload})
}

// reject logs a refused operation and hands the error back to the caller.
func (m *ClassroomManager) reject(ctx context.Context, err *OpError) (Outcome, error) {
	m.logger.Info(ctx, "Command rejected", log.Fields{
		"op":        err.Op,
		"kind":      KindOf(err).String(),
		"classroom": err.Classroom,
		"student":   err.Student,
	})
	return Outcome{}, err
}
