package errors

import (
	stderrors "errors"
)

// coder is implemented by any error that carries an ErrorCode, including
// typed errors defined outside this package.
type coder interface {
	Code() ErrorCode
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost coded error in err's chain.
// Returns CodeUnknown if the error is nil or carries no code.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeToolUnavailable {
//	    // Tell the user to install the archiver
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var c coder
	if stderrors.As(err, &c) {
		return c.Code()
	}

	return CodeUnknown
}

// GetContext returns the context attached to the outermost CodedError in
// err's chain, or nil.
func GetContext(err error) map[string]interface{} {
	var coded CodedError
	if stderrors.As(err, &coded) {
		return coded.Context()
	}
	return nil
}
