package exec

import (
	"context"
	"io"
)

// CommandWrapper wraps an Executor and prepends a fixed command to every Run.
// It implements Executor, so it can be used anywhere an Executor is expected.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper creates a new CommandWrapper that prepends cmd to all Run() calls.
// The executor can be any Executor implementation, including mocks.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// WithDir sets the working directory for the command.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the command.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithOutput streams output to stdout and stderr while capturing it.
func (w *CommandWrapper) WithOutput(stdout, stderr io.Writer) Executor {
	w.executor = w.executor.WithOutput(stdout, stderr)
	return w
}

// LookPath resolves the wrapped command itself; file is ignored when empty.
func (w *CommandWrapper) LookPath(file string) (string, error) {
	if file == "" {
		file = w.cmd
	}
	return w.executor.LookPath(file)
}

// Run executes the wrapped command with the given arguments.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := append([]string{w.cmd}, args...)
	return w.executor.Run(fullArgs...)
}

// Clone creates a copy of the wrapper with the same configuration.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
	}
}
