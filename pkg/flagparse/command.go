package flagparse

import (
	"fmt"
)

// Command defines the subcommand to execute.
type Command int

const (
	None Command = iota
	Analyze
	Largest
	Export
	Open
	Version
)

var commandToString = map[Command]string{
	None:    "none",
	Analyze: "analyze",
	Largest: "largest",
	Export:  "export",
	Open:    "open",
	Version: "version",
}

var stringToCommand map[string]Command

func init() {
	stringToCommand = make(map[string]Command, len(commandToString))
	for command, str := range commandToString {
		stringToCommand[str] = command
	}
}

func (c Command) String() string {
	if str, ok := commandToString[c]; ok {
		return str
	}
	return fmt.Sprintf("unknown_command(%d)", c)
}

func ParseCommand(s string) (Command, error) {
	if command, ok := stringToCommand[s]; ok {
		return command, nil
	}
	return None, fmt.Errorf("invalid command: %q. Must be 'analyze', 'largest', 'export', 'open', or 'version'", s)
}
