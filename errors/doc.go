// Package errors provides coded errors for filesystem tree operations.
//
// It extends Go's standard error handling with error codes and context
// metadata while staying compatible with the standard library errors
// package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidInput, "destination is inside source")
//	err := errors.Newf(errors.CodeUnsupported, "unsupported entry %s", path)
//
// Wrapping errors:
//
//	f, err := fsys.Open(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to open file")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "path", path)
//
// Inspecting errors:
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotFound:
//	    // ...
//	case errors.CodeToolUnavailable:
//	    // ...
//	}
//
// # Error Codes
//
//   - Filesystem errors: CodeNotFound, CodeAlreadyExists, CodePermission, CodeIO
//   - Validation errors: CodeInvalidInput, CodeInvalidConfig, CodeUnsupported
//   - External tool errors: CodeToolUnavailable, CodeExecutionFailed
//   - System errors: CodeInternal, CodeUnknown
//
// Any error type in a chain can participate in GetCode by implementing
// Code() ErrorCode; it does not have to be created by this package.
//
// Nothing in this module retries automatically. Codes describe what failed;
// the caller decides what to do about it.
package errors
