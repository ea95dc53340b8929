// Package console is the interactive text front end of the narrator.
package console

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrUnknownCommand is returned for input that names no command
	ErrUnknownCommand = errors.New("unknown command")
	// ErrQuit is returned by Execute when the user asks to leave
	ErrQuit = errors.New("quit")
)

// Console reads commands and drives the list view and its narration cards
type Console interface {
	// Run executes commands from in until EOF, quit, or ctx is done
	Run(ctx context.Context, in io.Reader) error
	// Execute runs a single command line
	Execute(ctx context.Context, line string) error
}
