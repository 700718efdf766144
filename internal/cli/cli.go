// Package cli runs the classroom command loop: it reads lines, dispatches
// them to the registry and renders the results.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"vclassroom/local-app/internal/data"
	"vclassroom/local-app/internal/log"
	"vclassroom/local-app/internal/ui"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	// ErrExit is returned by ExecuteScript when the script issued exit.
	ErrExit = errors.New("exit requested")
)

// LineReader supplies input lines. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

type CLI struct {
	Manager *data.ClassroomManager
	UI      *ui.UI
	reader  LineReader
	logger  *log.Logger
}

func NewCLI(manager *data.ClassroomManager, u *ui.UI, reader LineReader, logger *log.Logger) *CLI {
	return &CLI{
		Manager: manager,
		UI:      u,
		reader:  reader,
		logger:  logger,
	}
}

// Banner prints the startup greeting.
func (c *CLI) Banner() {
	c.UI.Println("Welcome to the Virtual Classroom Manager!")
}

// Run reads and executes commands until exit or end of input. A read
// failure other than EOF ends the loop and is returned.
func (c *CLI) Run() error {
	ctx := context.Background()
	for {
		c.UI.Println("Enter a command:")
		line, err := c.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			c.UI.Info("Use 'exit' to leave the Virtual Classroom Manager.")
			continue
		}
		if errors.Is(err, io.EOF) {
			c.logger.Info(ctx, "End of input", nil)
			return nil
		}
		if err != nil {
			c.logger.Error(ctx, "Failed to read command", log.Fields{"error": err})
			return fmt.Errorf("failed to read command: %w", err)
		}

		if exit, _ := c.ExecuteCommand(line); exit {
			return nil
		}
	}
}

// ExecuteCommand runs one input line. It reports whether the line was exit,
// and returns the error that was already rendered to the user, if any.
func (c *CLI) ExecuteCommand(line string) (bool, error) {
	ctx := context.Background()
	c.logger.Command(ctx, "Command received", log.Fields{"line": line})

	action, rest, _ := data.CutSpace(line)

	var err error
	switch action {
	case data.OpAddClassroom:
		err = c.render(c.Manager.ClassroomAdd(rest))
	case data.OpAddStudent:
		err = c.render(c.Manager.StudentAdd(rest))
	case data.OpScheduleAssignment:
		err = c.render(c.Manager.AssignmentSchedule(rest))
	case data.OpSubmitAssignment:
		err = c.render(c.Manager.AssignmentSubmit(rest))
	case data.OpListClassrooms:
		err = c.render(c.Manager.ClassroomList())
	case data.OpListStudents:
		err = c.render(c.Manager.StudentList(rest))
	case "help":
		err = c.HandleHelp(rest)
	case "exit":
		c.UI.Println("Exiting Virtual Classroom Manager...")
		return true, nil
	default:
		c.logger.Info(ctx, "Unknown command", log.Fields{"action": action})
		c.UI.Warning("Unknown command. Try again.")
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, action)
	}
	return false, err
}

// ExecuteScript runs every line of a script file as a command. Command
// errors are reported and execution continues; exit stops the script and
// returns ErrExit.
func (c *CLI) ExecuteScript(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer file.Close()

	c.logger.Info(context.Background(), "Executing script", log.Fields{"script": path})

	// Lines have no length limit, matching the interactive prompt.
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read script %s: %w", path, err)
		}
		if line == "" && err != nil {
			break
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		c.UI.Command(line)
		if exit, _ := c.ExecuteCommand(line); exit {
			return ErrExit
		}
		if err != nil {
			break
		}
	}
	return nil
}
