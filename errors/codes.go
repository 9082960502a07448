package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// Filesystem errors.

	// CodeNotFound indicates a path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a path already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodePermission indicates the process lacks permission for the operation.
	CodePermission ErrorCode = "PERMISSION_DENIED"

	// CodeIO indicates a read or write failed for any other reason.
	CodeIO ErrorCode = "IO_ERROR"

	// Validation errors.

	// CodeInvalidInput indicates the provided arguments are invalid.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeUnsupported indicates an entry or operation that is not supported,
	// such as a symbolic link under a policy that rejects them.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// External tool errors.

	// CodeToolUnavailable indicates a required executable is not on the search path.
	CodeToolUnavailable ErrorCode = "TOOL_UNAVAILABLE"

	// CodeExecutionFailed indicates an external command ran and failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
