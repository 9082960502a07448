package tree

import (
	"errors"
	"fmt"
	"io/fs"

	fserrors "github.com/jmgilman/go/fstree/errors"
)

// ToolUnavailableError is returned by Archive when the archiving tool cannot
// be found on the search path.
type ToolUnavailableError struct {
	// Tool is the name of the missing executable.
	Tool string
}

// Error implements the error interface.
func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("unable to find %q", e.Tool)
}

// Code returns CodeToolUnavailable.
func (e *ToolUnavailableError) Code() fserrors.ErrorCode {
	return fserrors.CodeToolUnavailable
}

// ExternalToolError is returned by Archive when the archiving tool runs and
// exits with a non-zero status.
type ExternalToolError struct {
	// Tool is the executable that was run.
	Tool string

	// ExitCode is the tool's exit status, or -1 if it was killed.
	ExitCode int

	// Stderr is the captured standard error of the tool.
	Stderr string

	// Err is the underlying execution error.
	Err error
}

// Error implements the error interface.
func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
}

// Unwrap returns the underlying execution error.
func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// Code returns CodeExecutionFailed.
func (e *ExternalToolError) Code() fserrors.ErrorCode {
	return fserrors.CodeExecutionFailed
}

// wrapFSError classifies a filesystem error and attaches the path it
// concerns. The original error stays reachable through errors.Is/As.
func wrapFSError(err error, message, path string) error {
	if err == nil {
		return nil
	}

	code := fserrors.CodeIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = fserrors.CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		code = fserrors.CodePermission
	case errors.Is(err, fs.ErrExist):
		code = fserrors.CodeAlreadyExists
	}

	return fserrors.WrapWithContext(err, code, message, map[string]interface{}{
		"path": path,
	})
}

// Compile-time interface checks.
var (
	_ interface{ Code() fserrors.ErrorCode } = (*ToolUnavailableError)(nil)
	_ interface{ Code() fserrors.ErrorCode } = (*ExternalToolError)(nil)
)
