package cli

import (
	"errors"
	"fmt"

	"vclassroom/local-app/internal/data"
)

// render prints the result of a registry operation and passes err through.
func (c *CLI) render(out data.Outcome, err error) error {
	if err != nil {
		c.renderError(err)
		return err
	}

	switch out.Kind {
	case data.OutcomeClassroomCreated:
		c.UI.Success(fmt.Sprintf("Classroom %s has been created.", out.Classroom))
	case data.OutcomeStudentEnrolled:
		c.UI.Success(fmt.Sprintf("Student %s has been enrolled in %s.", out.Student, out.Classroom))
	case data.OutcomeAssignmentScheduled:
		c.UI.Success(fmt.Sprintf("Assignment for %s has been scheduled.", out.Classroom))
	case data.OutcomeAssignmentSubmitted:
		c.UI.Success(fmt.Sprintf("Assignment submitted by Student %s in %s.", out.Student, out.Classroom))
	case data.OutcomeClassroomList:
		if len(out.Items) == 0 {
			c.UI.Info("No classrooms available.")
			return nil
		}
		c.UI.Println("Available classrooms:")
		c.renderItems(out.Items)
	case data.OutcomeStudentList:
		if len(out.Items) == 0 {
			c.UI.Info(fmt.Sprintf("No students enrolled in %s.", out.Classroom))
			return nil
		}
		c.UI.Println(fmt.Sprintf("Students in %s:", out.Classroom))
		c.renderItems(out.Items)
	}
	return nil
}

func (c *CLI) renderItems(items []string) {
	for _, item := range items {
		c.UI.Item(item)
	}
}

func (c *CLI) renderError(err error) {
	var opErr *data.OpError
	if !errors.As(err, &opErr) {
		c.UI.Error(err.Error())
		return
	}

	switch {
	case errors.Is(err, data.ErrFormat):
		c.UI.Error("Invalid command format. Use: " + usage(opErr.Op))
	case errors.Is(err, data.ErrClassroomExists):
		c.UI.Error(fmt.Sprintf("Classroom %s already exists.", opErr.Classroom))
	case errors.Is(err, data.ErrClassroomNotFound):
		c.UI.Error(fmt.Sprintf("Classroom %s does not exist.", opErr.Classroom))
	case errors.Is(err, data.ErrStudentNotEnrolled):
		c.UI.Error(fmt.Sprintf("Student %s not enrolled in %s.", opErr.Student, opErr.Classroom))
	case errors.Is(err, data.ErrAssignmentNotFound):
		c.UI.Error(fmt.Sprintf("Assignment not found in %s.", opErr.Classroom))
	default:
		c.UI.Error(err.Error())
	}
}
