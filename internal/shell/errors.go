package shell

import (
	"errors"
	"fmt"
)

// ErrMissingArgument is returned when a command needs an argument that was
// not given, such as `load` without a file name.
var ErrMissingArgument = errors.New("missing argument")

// UnknownCommandError is returned for input that matches no command.
type UnknownCommandError struct {
	Command string
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s -> Unknown command", e.Command)
}
