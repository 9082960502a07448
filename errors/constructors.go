package errors

import "fmt"

// New creates a new CodedError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "source path is empty")
func New(code ErrorCode, message string) CodedError {
	return &codedError{
		code:    code,
		message: message,
	}
}

// Newf creates a new CodedError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeUnsupported, "cannot copy %s: not a regular file or directory", path)
func Newf(code ErrorCode, format string, args ...interface{}) CodedError {
	return &codedError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
