package exec

import (
	"context"
	"io"
	osexec "os/exec"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// ErrNotFound is returned by LookPath when an executable cannot be found.
// Re-exported from os/exec for convenience.
var ErrNotFound = osexec.ErrNotFound

// Executor is the main interface for locating and executing commands.
// It provides a fluent API for configuring and running commands.
type Executor interface {
	// WithDir sets the working directory for the command.
	WithDir(dir string) Executor

	// WithContext sets the context for the command.
	// The command is killed if the context is canceled.
	WithContext(ctx context.Context) Executor

	// WithOutput streams the command's output to stdout and stderr as it is
	// produced. Output is captured into the Result either way; a nil writer
	// leaves that stream captured only.
	WithOutput(stdout, stderr io.Writer) Executor

	// LookPath searches for an executable named file on the search path.
	// If file contains a path separator it is checked directly.
	LookPath(file string) (string, error)

	// Run executes the command with the given arguments.
	// It returns a Result containing the captured output and exit code.
	Run(args ...string) (*Result, error)

	// Clone creates a copy of the executor with the same configuration.
	Clone() Executor
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// ExitCode is the exit code returned by the command
	ExitCode int
}

// Option is a function that configures a Command at creation time.
type Option func(*Command)

// WithDir returns an Option that sets the working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.dir = dir
	}
}

// WithLookPath returns an Option that replaces the executable lookup
// function. It defaults to os/exec.LookPath.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(c *Command) {
		c.lookPath = fn
	}
}
