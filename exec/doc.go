// Package exec provides a testable interface for locating and executing local
// commands.
//
// This package wraps the standard library's os/exec, providing the Command
// struct that implements the Executor interface. The package returns concrete
// types (Command, CommandWrapper) while accepting interfaces in function
// parameters, making it easy to mock command execution in tests.
//
// # Basic Usage
//
//	ex := exec.New()
//	result, err := ex.Run("zip", "-r", "out.zip", "src")
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.Stdout)
//
// # Locating Tools
//
// LookPath resolves an executable on the search path without running it, so
// callers can fail before producing any side effects:
//
//	path, err := ex.LookPath("zip")
//	if errors.Is(err, exec.ErrNotFound) {
//		// zip is not installed
//	}
//
// # Configuration
//
// Options set defaults at creation time. The With* methods adjust a single
// executor and return it, so calls chain:
//
//	ex := exec.New(exec.WithDir("/srv/data"))
//	result, err := ex.
//		WithContext(ctx).
//		WithOutput(os.Stdout, os.Stderr).
//		Run("tar", "-c", "-f", "out.tar", "src")
//
// Output is always captured into the Result; WithOutput additionally streams
// it while the command runs.
//
// The With* methods mutate the receiver and settings persist across runs.
// Clone before configuring an executor that is shared.
//
// # Command Wrappers
//
// A wrapper prepends a fixed command to every Run:
//
//	zip := exec.NewWrapper(ex, "/usr/bin/zip")
//	result, err := zip.Run("-r", "out.zip", "src")
//
// # Error Handling
//
// Command failures return an *ExecError carrying the exit code, the command
// line and the captured standard error.
package exec
