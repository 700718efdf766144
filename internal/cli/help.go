package cli

import (
	"fmt"
	"strings"
)

// CommandHelp holds the help text of one command.
type CommandHelp struct {
	Command   string
	ShortDesc string
	LongDesc  string
	Syntax    string
	Arguments []string
	Examples  []string
}

// HandleHelp prints the command overview, or the details of one command.
func (c *CLI) HandleHelp(args string) error {
	topic := strings.TrimSpace(args)
	if topic == "" {
		c.showGeneralHelp()
		return nil
	}
	return c.showCommandHelp(topic)
}

func (c *CLI) showGeneralHelp() {
	c.UI.Println("Available commands:")
	for _, cmd := range commandHelps {
		c.UI.Printf("  %-20s %s\n", cmd.Command, cmd.ShortDesc)
	}
	c.UI.Println("Use 'help <command>' for more information about a command.")
}

func (c *CLI) showCommandHelp(topic string) error {
	cmd, ok := helpFor(topic)
	if !ok {
		c.UI.Warning(fmt.Sprintf("No help found for %s.", topic))
		return fmt.Errorf("no help found for %s", topic)
	}

	c.UI.Printf("Command: %s\n", cmd.Command)
	c.UI.Printf("Description: %s\n", cmd.LongDesc)
	c.UI.Printf("Syntax: %s\n", cmd.Syntax)
	if len(cmd.Arguments) > 0 {
		c.UI.Println("Arguments:")
		for _, arg := range cmd.Arguments {
			c.UI.Printf("  %s\n", arg)
		}
	}
	if len(cmd.Examples) > 0 {
		c.UI.Println("Examples:")
		for _, ex := range cmd.Examples {
			c.UI.Printf("  %s\n", ex)
		}
	}
	return nil
}

func helpFor(command string) (CommandHelp, bool) {
	for _, cmd := range commandHelps {
		if cmd.Command == command {
			return cmd, true
		}
	}
	return CommandHelp{}, false
}

// usage is the syntax shown in format errors.
func usage(command string) string {
	if cmd, ok := helpFor(command); ok {
		return cmd.Syntax
	}
	return command
}

var commandHelps = []CommandHelp{
	{
		Command:   "add_classroom",
		ShortDesc: "Create a classroom",
		LongDesc:  "Creates an empty classroom. Names are case-sensitive and must be unique.",
		Syntax:    "add_classroom <className>",
		Arguments: []string{"className: The name of the new classroom"},
		Examples:  []string{"add_classroom Math"},
	},
	{
		Command:   "add_student",
		ShortDesc: "Enroll a student in a classroom",
		LongDesc:  "Enrolls a student id in an existing classroom. Enrolling the same id twice adds a second entry.",
		Syntax:    "add_student <studentID> <className>",
		Arguments: []string{"studentID: The id of the student", "className: The classroom to enroll in"},
		Examples:  []string{"add_student S1 Math"},
	},
	{
		Command:   "schedule_assignment",
		ShortDesc: "Schedule an assignment",
		LongDesc:  "Schedules an assignment in an existing classroom. Everything after the class name is the assignment text.",
		Syntax:    "schedule_assignment <className> <assignmentDetails>",
		Arguments: []string{"className: The classroom to schedule in", "assignmentDetails: Free text describing the assignment"},
		Examples:  []string{"schedule_assignment Math Homework 1"},
	},
	{
		Command:   "submit_assignment",
		ShortDesc: "Submit an assignment",
		LongDesc:  "Marks an assignment as submitted for an enrolled student. The assignment text must match the scheduled text exactly.",
		Syntax:    "submit_assignment <studentID> <className> <assignmentDetails>",
		Arguments: []string{"studentID: The id of an enrolled student", "className: The classroom of the assignment", "assignmentDetails: The text of a scheduled assignment"},
		Examples:  []string{"submit_assignment S1 Math Homework 1"},
	},
	{
		Command:   "list_classrooms",
		ShortDesc: "List all classrooms",
		LongDesc:  "Lists classrooms in the order they were created.",
		Syntax:    "list_classrooms",
		Examples:  []string{"list_classrooms"},
	},
	{
		Command:   "list_students",
		ShortDesc: "List the students of a classroom",
		LongDesc:  "Lists the students of a classroom in enrollment order.",
		Syntax:    "list_students <className>",
		Arguments: []string{"className: The classroom to list"},
		Examples:  []string{"list_students Math"},
	},
	{
		Command:   "help",
		ShortDesc: "Show help",
		LongDesc:  "Shows the list of commands, or the details of one command.",
		Syntax:    "help [command]",
		Arguments: []string{"command: (Optional) The command to describe"},
		Examples:  []string{"help", "help submit_assignment"},
	},
	{
		Command:   "exit",
		ShortDesc: "Exit the program",
		LongDesc:  "Exits the Virtual Classroom Manager. Classroom data is not kept.",
		Syntax:    "exit",
	},
}
