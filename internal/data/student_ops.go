package data

import (
	"context"
	"strings"

	"vclassroom/local-app/internal/event"
	"vclassroom/local-app/internal/log"
	"vclassroom/local-app/internal/models"
)

// StudentAdd enrolls a student. args must hold exactly two whitespace
// separated fields: <studentID> <className>. The same id may be enrolled
// more than once.
func (m *ClassroomManager) StudentAdd(args string) (Outcome, error) {
	ctx := context.Background()

	fields := strings.Fields(args)
	if len(fields) != 2 {
		return m.reject(ctx, &OpError{Op: OpAddStudent, Err: ErrFormat})
	}
	studentID, className := fields[0], fields[1]

	m.mu.Lock()
	classroom, ok := m.classrooms[className]
	if ok {
		classroom.StudentAdd(models.NewStudent(studentID))
	}
	m.mu.Unlock()

	if !ok {
		return m.reject(ctx, &OpError{Op: OpAddStudent, Classroom: className, Err: ErrClassroomNotFound})
	}

	m.publish(event.StudentEnrolled, event.Payload{Classroom: className, Student: studentID})
	m.logger.Info(ctx, "Student enrolled", log.Fields{"student": studentID, "classroom": className})
	return Outcome{Kind: OutcomeStudentEnrolled, Classroom: className, Student: studentID}, nil
}

// StudentList returns the ids enrolled in className in enrollment order.
func (m *ClassroomManager) StudentList(className string) (Outcome, error) {
	ctx := context.Background()

	m.mu.Lock()
	classroom, ok := m.classrooms[className]
	var ids []string
	if ok {
		ids = make([]string, 0, len(classroom.Students))
		for _, s := range classroom.Students {
			ids = append(ids, s.ID)
		}
	}
	m.mu.Unlock()

	if !ok {
		return m.reject(ctx, &OpError{Op: OpListStudents, Classroom: className, Err: ErrClassroomNotFound})
	}

	m.logger.Debug(ctx, "Students listed", log.Fields{"classroom": className, "count": len(ids)})
	return Outcome{Kind: OutcomeStudentList, Classroom: className, Items: ids}, nil
}
