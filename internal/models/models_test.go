package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassroomKeepsEnrollmentOrder(t *testing.T) {
	c := NewClassroom("Math")
	for _, id := range []string{"S2", "S1", "S3", "S1"} {
		c.StudentAdd(NewStudent(id))
	}

	require.Len(t, c.Students, 4)
	ids := make([]string, 0, len(c.Students))
	for _, s := range c.Students {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"S2", "S1", "S3", "S1"}, ids)
	assert.Equal(t, "Math", c.Name())
}

func TestClassroomFindFirstMatch(t *testing.T) {
	c := NewClassroom("Math")
	first := NewAssignment("Homework 1")
	second := NewAssignment("Homework 1")
	c.AssignmentAdd(first)
	c.AssignmentAdd(second)

	got, ok := c.AssignmentFind("Homework 1")
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = c.AssignmentFind("homework 1")
	assert.False(t, ok, "lookup is case sensitive")

	_, ok = c.StudentFind("S1")
	assert.False(t, ok)
}

func TestAssignmentSubmitIsMonotonic(t *testing.T) {
	a := NewAssignment("Essay")
	assert.False(t, a.Submitted())

	a.Submit()
	a.Submit()
	assert.True(t, a.Submitted())
}
