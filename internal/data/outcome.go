package data

import (
	"errors"
	"fmt"
)

// Command names, used as operation names in errors and logs.
const (
	OpAddClassroom       = "add_classroom"
	OpAddStudent         = "add_student"
	OpScheduleAssignment = "schedule_assignment"
	OpSubmitAssignment   = "submit_assignment"
	OpListClassrooms     = "list_classrooms"
	OpListStudents       = "list_students"
)

// OutcomeKind identifies what a successful operation did.
type OutcomeKind int

const (
	OutcomeClassroomCreated OutcomeKind = iota
	OutcomeStudentEnrolled
	OutcomeAssignmentScheduled
	OutcomeAssignmentSubmitted
	OutcomeClassroomList
	OutcomeStudentList
)

// Outcome is the structured result of a registry operation. Items holds the
// listed names for the list kinds; an empty Items means nothing to list.
type Outcome struct {
	Kind      OutcomeKind
	Classroom string
	Student   string
	Details   string
	Items     []string
}

var (
	ErrFormat             = errors.New("invalid command format")
	ErrClassroomExists    = errors.New("classroom already exists")
	ErrClassroomNotFound  = errors.New("classroom does not exist")
	ErrStudentNotEnrolled = errors.New("student not enrolled")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// OpError describes a rejected operation and the entities it referred to.
type OpError struct {
	Op        string
	Classroom string
	Student   string
	Err       error
}

func (e *OpError) Error() string {
	switch {
	case e.Student != "" && e.Classroom != "":
		return fmt.Sprintf("%s: %v: student %q in classroom %q", e.Op, e.Err, e.Student, e.Classroom)
	case e.Classroom != "" || errors.Is(e.Err, ErrClassroomExists) || errors.Is(e.Err, ErrClassroomNotFound):
		return fmt.Sprintf("%s: %v: %q", e.Op, e.Err, e.Classroom)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// ErrorKind groups errors into format, not-found and duplicate failures.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindFormat
	KindNotFound
	KindDuplicate
)

func (k ErrorKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	default:
		return "other"
	}
}

// KindOf classifies err.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrFormat):
		return KindFormat
	case errors.Is(err, ErrClassroomNotFound),
		errors.Is(err, ErrStudentNotEnrolled),
		errors.Is(err, ErrAssignmentNotFound):
		return KindNotFound
	case errors.Is(err, ErrClassroomExists):
		return KindDuplicate
	default:
		return KindOther
	}
}
