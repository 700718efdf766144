package data

import (
	"context"

	"vclassroom/local-app/internal/event"
	"vclassroom/local-app/internal/log"
	"vclassroom/local-app/internal/models"
)

// AssignmentSchedule adds an unsubmitted assignment. args is
// <className> <details...>, split on the first whitespace only.
func (m *ClassroomManager) AssignmentSchedule(args string) (Outcome, error) {
	ctx := context.Background()

	parts, ok := cutSpaceN(args, 2)
	if !ok {
		return m.reject(ctx, &OpError{Op: OpScheduleAssignment, Err: ErrFormat})
	}
	className, details := parts[0], parts[1]

	m.mu.Lock()
	classroom, found := m.classrooms[className]
	if found {
		classroom.AssignmentAdd(models.NewAssignment(details))
	}
	m.mu.Unlock()

	if !found {
		return m.reject(ctx, &OpError{Op: OpScheduleAssignment, Classroom: className, Err: ErrClassroomNotFound})
	}

	m.publish(event.AssignmentScheduled, event.Payload{Classroom: className, Details: details})
	m.logger.Info(ctx, "Assignment scheduled", log.Fields{"classroom": className, "details": details})
	return Outcome{Kind: OutcomeAssignmentScheduled, Classroom: className, Details: details}, nil
}

// AssignmentSubmit marks an assignment as submitted. args is
// <studentID> <className> <details...>. The student must be enrolled; that
// is checked before the assignment is looked up. Submitting again succeeds.
func (m *ClassroomManager) AssignmentSubmit(args string) (Outcome, error) {
	ctx := context.Background()

	parts, ok := cutSpaceN(args, 3)
	if !ok {
		return m.reject(ctx, &OpError{Op: OpSubmitAssignment, Err: ErrFormat})
	}
	studentID, className, details := parts[0], parts[1], parts[2]

	m.mu.Lock()
	var opErr *OpError
	classroom, found := m.classrooms[className]
	if !found {
		opErr = &OpError{Op: OpSubmitAssignment, Classroom: className, Err: ErrClassroomNotFound}
	} else if _, enrolled := classroom.StudentFind(studentID); !enrolled {
		opErr = &OpError{Op: OpSubmitAssignment, Classroom: className, Student: studentID, Err: ErrStudentNotEnrolled}
	} else if assignment, exists := classroom.AssignmentFind(details); !exists {
		opErr = &OpError{Op: OpSubmitAssignment, Classroom: className, Err: ErrAssignmentNotFound}
	} else {
		assignment.Submit()
	}
	m.mu.Unlock()

	if opErr != nil {
		return m.reject(ctx, opErr)
	}

	m.publish(event.AssignmentSubmitted, event.Payload{Classroom: className, Student: studentID, Details: details})
	m.logger.Info(ctx, "Assignment submitted", log.Fields{"student": studentID, "classroom": className, "details": details})
	return Outcome{Kind: OutcomeAssignmentSubmitted, Classroom: className, Student: studentID, Details: details}, nil
}
