package roster

import (
	"errors"
	"fmt"
)

// Error kinds for errors.Is checks.
var (
	// ErrFile is returned when a roster file cannot be opened, read or written.
	ErrFile = errors.New("file error")
	// ErrParse is returned for malformed XML or a non-integer grade token.
	ErrParse = errors.New("parse error")
)

// Error describes a failed roster operation.
type Error struct {
	Op   string // "load", "save", "select"
	Kind error  // ErrFile or ErrParse
	Path string // file path or student name, optional
	Err  error  // underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("roster.%s: %v", e.Op, e.Kind)
	if e.Path != "" {
		msg += fmt.Sprintf(": %s", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target matches the error kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func fileError(op, path string, err error) *Error {
	return &Error{Op: op, Kind: ErrFile, Path: path, Err: err}
}

func parseError(op, path string, err error) *Error {
	return &Error{Op: op, Kind: ErrParse, Path: path, Err: err}
}
