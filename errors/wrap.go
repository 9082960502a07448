package errors

import "fmt"

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.MkdirAll(dir, 0o755); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to create directory")
//	}
func Wrap(err error, code ErrorCode, message string) CodedError {
	if err == nil {
		return nil
	}

	return &codedError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) CodedError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeIO, "failed to read file", map[string]interface{}{
//	    "path": path,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) CodedError {
	if err == nil {
		return nil
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return &codedError{
		code:    code,
		message: message,
		context: contextCopy,
		cause:   err,
	}
}
