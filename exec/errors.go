package exec

import (
	"fmt"
	"strings"
)

// ExecError reports a command that could not be started or exited
// unsuccessfully.
type ExecError struct {
	// Args is the command line that was run.
	Args []string

	// Dir is the working directory, empty for the current one.
	Dir string

	// ExitCode is the process exit code. It is -1 when the process never
	// started or was killed by a signal.
	ExitCode int

	// Stderr holds whatever the command wrote to standard error.
	Stderr string

	// Err is the error reported by os/exec.
	Err error
}

func (e *ExecError) Error() string {
	name := "<empty command>"
	if len(e.Args) > 0 {
		name = e.Args[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: exit code %d", name, e.ExitCode)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		fmt.Fprintf(&b, " (%s)", firstLine(msg))
	}
	return b.String()
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
