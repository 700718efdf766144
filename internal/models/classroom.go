// Package models defines the entities managed by the classroom registry.
package models

// Classroom is a named container of students and assignments.
// The name is fixed at creation.
type Classroom struct {
	name        string
	Students    []*Student
	Assignments []*Assignment
}

func NewClassroom(name string) *Classroom {
	return &Classroom{
		name:        name,
		Students:    make([]*Student, 0),
		Assignments: make([]*Assignment, 0),
	}
}

func (c *Classroom) Name() string {
	return c.name
}

// StudentAdd appends a student in enrollment order. Duplicate ids are kept.
func (c *Classroom) StudentAdd(student *Student) {
	c.Students = append(c.Students, student)
}

// AssignmentAdd appends an assignment in scheduling order.
func (c *Classroom) AssignmentAdd(assignment *Assignment) {
	c.Assignments = append(c.Assignments, assignment)
}

// Clone returns a deep copy that shares no students or assignments with c.
func (c *Classroom) Clone() *Classroom {
	clone := NewClassroom(c.name)
	for _, s := range c.Students {
		student := *s
		clone.Students = append(clone.Students, &student)
	}
	for _, a := range c.Assignments {
		assignment := *a
		clone.Assignments = append(clone.Assignments, &assignment)
	}
	return clone
}

// StudentFind returns the first student whose id equals id.
func (c *Classroom) StudentFind(id string) (*Student, bool) {
	for _, s := range c.Students {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// AssignmentFind returns the first assignment whose details equal details.
func (c *Classroom) AssignmentFind(details string) (*Assignment, bool) {
	for _, a := range c.Assignments {
		if a.Details == details {
			return a, true
		}
	}
	return nil, false
}
