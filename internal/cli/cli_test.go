package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vclassroom/local-app/internal/data"
	"vclassroom/local-app/internal/event"
	"vclassroom/local-app/internal/log"
	"vclassroom/local-app/internal/ui"
)

// fakeReader returns its steps in order, then io.EOF.
type fakeReader struct {
	steps []step
}

type step struct {
	line string
	err  error
}

func lines(ls ...string) *fakeReader {
	r := &fakeReader{}
	for _, l := range ls {
		r.steps = append(r.steps, step{line: l})
	}
	return r
}

func (r *fakeReader) Readline() (string, error) {
	if len(r.steps) == 0 {
		return "", io.EOF
	}
	s := r.steps[0]
	r.steps = r.steps[1:]
	return s.line, s.err
}

func newTestCLI(reader LineReader) (*CLI, *bytes.Buffer) {
	var out bytes.Buffer
	manager := data.NewClassroomManager(event.NewEventManager(log.Discard()), log.Discard())
	return NewCLI(manager, ui.NewUI(&out, false), reader, log.Discard()), &out
}

// run executes each line and returns the output it produced.
func run(t *testing.T, c *CLI, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	exit, _ := c.ExecuteCommand(line)
	require.False(t, exit)
	return out.String()
}

func TestExecuteCommand_Messages(t *testing.T) {
	c, out := newTestCLI(lines())

	tests := []struct {
		line string
		want string
	}{
		{"list_classrooms", "No classrooms available.\n"},
		{"add_classroom Math", "Classroom Math has been created.\n"},
		{"add_classroom Math", "Classroom Math already exists.\n"},
		{"add_student S1 Math", "Student S1 has been enrolled in Math.\n"},
		{"add_student X", "Invalid command format. Use: add_student <studentID> <className>\n"},
		{"add_student S1 History", "Classroom History does not exist.\n"},
		{"schedule_assignment Math", "Invalid command format. Use: schedule_assignment <className> <assignmentDetails>\n"},
		{"schedule_assignment Math Homework 1", "Assignment for Math has been scheduled.\n"},
		{"submit_assignment S1 Math", "Invalid command format. Use: submit_assignment <studentID> <className> <assignmentDetails>\n"},
		{"submit_assignment S9 Math Homework 1", "Student S9 not enrolled in Math.\n"},
		{"submit_assignment S1 Math Homework 2", "Assignment not found in Math.\n"},
		{"submit_assignment S1 Math Homework 1", "Assignment submitted by Student S1 in Math.\n"},
		{"submit_assignment S1 Art Homework 1", "Classroom Art does not exist.\n"},
		{"list_students Math", "Students in Math:\nS1\n"},
		{"list_students Art", "Classroom Art does not exist.\n"},
		{"list_classrooms", "Available classrooms:\nMath\n"},
		{"fly_to_moon", "Unknown command. Try again.\n"},
		{"", "Unknown command. Try again.\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, run(t, c, out, tt.line), tt.line)
	}
}

func TestExecuteCommand_EmptyStudentList(t *testing.T) {
	c, out := newTestCLI(lines())

	run(t, c, out, "add_classroom Math")
	assert.Equal(t, "No students enrolled in Math.\n", run(t, c, out, "list_students Math"))
}

func TestExecuteCommand_Errors(t *testing.T) {
	c, _ := newTestCLI(lines())

	_, err := c.ExecuteCommand("dance")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = c.ExecuteCommand("add_student S1 Math")
	assert.ErrorIs(t, err, data.ErrClassroomNotFound)

	_, err = c.ExecuteCommand("add_classroom Math")
	assert.NoError(t, err)
}

func TestExecuteCommand_Exit(t *testing.T) {
	c, out := newTestCLI(lines())

	exit, err := c.ExecuteCommand("exit")
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Equal(t, "Exiting Virtual Classroom Manager...\n", out.String())
}

func TestRun_Session(t *testing.T) {
	c, out := newTestCLI(lines(
		"add_classroom Math",
		"add_student S1 Math",
		"exit",
		"add_classroom Never",
	))

	c.Banner()
	require.NoError(t, c.Run())

	want := strings.Join([]string{
		"Welcome to the Virtual Classroom Manager!",
		"Enter a command:",
		"Classroom Math has been created.",
		"Enter a command:",
		"Student S1 has been enrolled in Math.",
		"Enter a command:",
		"Exiting Virtual Classroom Manager...",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, []string{"Math"}, c.Manager.ClassroomNames())
}

func TestRun_EndOfInput(t *testing.T) {
	c, out := newTestCLI(lines("add_classroom Math"))

	require.NoError(t, c.Run())
	assert.Equal(t, "Enter a command:\nClassroom Math has been created.\nEnter a command:\n", out.String())
}

func TestRun_InterruptKeepsRunning(t *testing.T) {
	reader := &fakeReader{steps: []step{
		{err: readline.ErrInterrupt},
		{line: "add_classroom Math"},
	}}
	c, out := newTestCLI(reader)

	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "Use 'exit' to leave the Virtual Classroom Manager.")
	assert.Equal(t, []string{"Math"}, c.Manager.ClassroomNames())
}

func TestRun_ReadError(t *testing.T) {
	broken := errors.New("terminal gone")
	c, _ := newTestCLI(&fakeReader{steps: []step{{err: broken}}})

	assert.ErrorIs(t, c.Run(), broken)
}

func TestHelp(t *testing.T) {
	c, out := newTestCLI(lines())

	general := run(t, c, out, "help")
	assert.True(t, strings.HasPrefix(general, "Available commands:\n"))
	for _, cmd := range commandHelps {
		assert.Contains(t, general, cmd.Command)
	}

	detail := run(t, c, out, "help submit_assignment")
	assert.Contains(t, detail, "Syntax: submit_assignment <studentID> <className> <assignmentDetails>\n")
	assert.Contains(t, detail, "Examples:\n  submit_assignment S1 Math Homework 1\n")

	assert.Equal(t, "No help found for teleport.\n", run(t, c, out, "help teleport"))
}

func TestExecuteScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "setup.txt")
	require.NoError(t, os.WriteFile(script, []byte("add_classroom Math\nadd_student S1 Math\nadd_student S2 Art\n"), 0644))

	c, out := newTestCLI(lines())
	require.NoError(t, c.ExecuteScript(script))

	assert.Equal(t, []string{"Math"}, c.Manager.ClassroomNames())
	assert.Contains(t, out.String(), "> add_student S2 Art\nClassroom Art does not exist.\n")
}

func TestExecuteScript_LongLinesAndLineEndings(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "long.txt")
	long := strings.Repeat("A", 70000)
	content := "add_classroom " + long + "\r\nadd_classroom Math\nadd_student S1 Math"
	require.NoError(t, os.WriteFile(script, []byte(content), 0644))

	c, out := newTestCLI(lines())
	require.NoError(t, c.ExecuteScript(script))

	assert.Equal(t, []string{long, "Math"}, c.Manager.ClassroomNames())
	assert.Contains(t, out.String(), "Classroom Math has been created.\n")
	assert.Contains(t, out.String(), "Student S1 has been enrolled in Math.\n")
}

func TestExecuteScript_Exit(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "quit.txt")
	require.NoError(t, os.WriteFile(script, []byte("add_classroom Math\nexit\nadd_classroom Art\n"), 0644))

	c, _ := newTestCLI(lines())
	assert.ErrorIs(t, c.ExecuteScript(script), ErrExit)
	assert.Equal(t, []string{"Math"}, c.Manager.ClassroomNames())
}

func TestExecuteScript_Missing(t *testing.T) {
	c, _ := newTestCLI(lines())
	assert.Error(t, c.ExecuteScript(filepath.Join(t.TempDir(), "absent.txt")))
}

func TestClassroomCandidates(t *testing.T) {
	c, _ := newTestCLI(lines())
	c.ExecuteCommand("add_classroom Math")
	c.ExecuteCommand("add_classroom Art")

	candidates := classroomCandidates(c.Manager)
	assert.Equal(t, []string{"Math", "Art"}, candidates(""))
	assert.NotNil(t, Completer(c.Manager))
}
