package script

import "github.com/pkg/errors"

var (
	// ErrUnknownCommand is returned by Parse when a line starts with a word
	// which is not a command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrBadArguments is returned by Parse when a command has the wrong
	// number of arguments.
	ErrBadArguments = errors.New("bad arguments")

	// ErrExpectationFailed is returned by Runner.Run when an expect or
	// verify command fails.
	ErrExpectationFailed = errors.New("expectation failed")
)
