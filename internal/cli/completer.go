package cli

import (
	"github.com/chzyer/readline"

	"vclassroom/local-app/internal/data"
)

// Completer completes command names, help topics and, where a command
// starts with a class name, the names of existing classrooms.
func Completer(manager *data.ClassroomManager) *readline.PrefixCompleter {
	classrooms := func() readline.PrefixCompleterInterface {
		return readline.PcItemDynamic(classroomCandidates(manager))
	}

	topics := make([]readline.PrefixCompleterInterface, 0, len(commandHelps))
	for _, cmd := range commandHelps {
		topics = append(topics, readline.PcItem(cmd.Command))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(data.OpAddClassroom),
		readline.PcItem(data.OpAddStudent),
		readline.PcItem(data.OpScheduleAssignment, classrooms()),
		readline.PcItem(data.OpSubmitAssignment),
		readline.PcItem(data.OpListClassrooms),
		readline.PcItem(data.OpListStudents, classrooms()),
		readline.PcItem("help", topics...),
		readline.PcItem("exit"),
	)
}

func classroomCandidates(manager *data.ClassroomManager) readline.DynamicCompleteFunc {
	return func(string) []string {
		return manager.ClassroomNames()
	}
}
