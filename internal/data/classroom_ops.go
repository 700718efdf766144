package data

import (
	"context"

	"vclassroom/local-app/internal/event"
	"vclassroom/local-app/internal/log"
	"vclassroom/local-app/internal/models"
)

// ClassroomAdd registers an empty classroom. Any name is accepted, including
// the empty string, as long as it is not registered yet.
func (m *ClassroomManager) ClassroomAdd(name string) (Outcome, error) {
	ctx := context.Background()

	m.mu.Lock()
	_, exists := m.classrooms[name]
	if !exists {
		m.classrooms[name] = models.NewClassroom(name)
		m.order = append(m.order, name)
	}
	m.mu.Unlock()

	if exists {
		return m.reject(ctx, &OpError{Op: OpAddClassroom, Classroom: name, Err: ErrClassroomExists})
	}

	m.publish(event.ClassroomAdded, event.Payload{Classroom: name})
	m.logger.Info(ctx, "Classroom created", log.Fields{"classroom": name})
	return Outcome{Kind: OutcomeClassroomCreated, Classroom: name}, nil
}

// ClassroomList returns all classroom names in insertion order.
func (m *ClassroomManager) ClassroomList() (Outcome, error) {
	names := m.ClassroomNames()
	m.logger.Debug(context.Background(), "Classrooms listed", log.Fields{"count": len(names)})
	return Outcome{Kind: OutcomeClassroomList, Items: names}, nil
}
