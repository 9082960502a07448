package exec

import (
	"context"
	"io"
	osexec "os/exec"
)

// Command is the concrete implementation of the Executor interface.
type Command struct {
	dir      string
	ctx      context.Context
	stdout   io.Writer
	stderr   io.Writer
	lookPath func(string) (string, error)
}

// New creates a new Command with the given options.
func New(opts ...Option) *Command {
	cmd := &Command{
		ctx:      context.Background(),
		lookPath: osexec.LookPath,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithDir sets the working directory for the command.
func (c *Command) WithDir(dir string) Executor {
	c.dir = dir
	return c
}

// WithContext sets the context for the command.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithOutput streams output to stdout and stderr while capturing it.
func (c *Command) WithOutput(stdout, stderr io.Writer) Executor {
	c.stdout = stdout
	c.stderr = stderr
	return c
}

// LookPath searches for an executable named file on the search path.
func (c *Command) LookPath(file string) (string, error) {
	return c.lookPath(file)
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ExecError{Args: args, ExitCode: -1, Err: ErrNotFound}
	}

	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	// args are passed to the process as-is; no shell is involved.
	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = c.dir

	out := &capture{}
	cmd.Stdout = out.stream(&out.stdout, c.stdout)
	cmd.Stderr = out.stream(&out.stderr, c.stderr)

	err := cmd.Run()

	result := &Result{
		Stdout:   out.stdout.String(),
		Stderr:   out.stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		return result, &ExecError{
			Args:     args,
			Dir:      c.dir,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// Clone creates a copy of the executor with the same configuration.
func (c *Command) Clone() Executor {
	clone := *c
	return &clone
}
