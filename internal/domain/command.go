package domain

import "strings"

// Command is the argv of the process the gate hands off to.
// This type is used to pass command information between layers
// without exposing implementation details.
type Command []string

// Validate checks that the command has at least a program name.
func (c Command) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCommand
	}
	return nil
}

// Program returns the program name (argv[0]).
func (c Command) Program() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns the arguments following the program name.
func (c Command) Args() []string {
	if len(c) <= 1 {
		return nil
	}
	return c[1:]
}

// String returns the command as a single space-joined line for messages.
func (c Command) String() string {
	return strings.Join(c, " ")
}
