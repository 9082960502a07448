package errors

import "fmt"

// CodedError extends the standard error interface with an error code and
// contextual metadata.
type CodedError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	Unwrap() error
}

// codedError is the concrete implementation of CodedError.
// It is private to enforce construction through package functions.
type codedError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *codedError) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
func (e *codedError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none is attached.
func (e *codedError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped error.
func (e *codedError) Unwrap() error {
	return e.cause
}
