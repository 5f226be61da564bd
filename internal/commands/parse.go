package commands

import "strings"

// Parse splits a console line into a command and its arguments. Commands are
// case-sensitive. A blank line yields an empty command.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// IsExit reports whether command ends the session.
func IsExit(command string) bool {
	return command == "close" || command == "exit"
}
