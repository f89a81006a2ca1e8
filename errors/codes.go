package errors

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrRuntime indicates an error that does not belong to any other class.
	ErrRuntime ErrorKind = iota
	// ErrType indicates a type mismatch or invalid operation on a type.
	ErrType
	// ErrValue indicates an invalid value for an operation.
	ErrValue
	// ErrIndex indicates an index outside the bounds of a string.
	ErrIndex
	// ErrArgs indicates a wrong number of arguments.
	ErrArgs
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrType:
		return "type error"
	case ErrValue:
		return "value error"
	case ErrIndex:
		return "index error"
	case ErrArgs:
		return "args error"
	default:
		return "runtime error"
	}
}

// Code returns the stable error code for the kind.
func (k ErrorKind) Code() ErrorCode {
	switch k {
	case ErrType:
		return E3001
	case ErrValue:
		return E3002
	case ErrIndex:
		return E3003
	case ErrArgs:
		return E3010
	default:
		return E3000
	}
}

// ErrorCode is a unique identifier for an error class, suitable for a host
// to map onto its own exception types or for use as a process exit reason.
type ErrorCode string

const (
	E3000 ErrorCode = "E3000" // Runtime error
	E3001 ErrorCode = "E3001" // Type error
	E3002 ErrorCode = "E3002" // Value error
	E3003 ErrorCode = "E3003" // Index out of bounds
	E3010 ErrorCode = "E3010" // Invalid argument count
)

var codeDescriptions = map[ErrorCode]string{
	E3000: "runtime error",
	E3001: "type error",
	E3002: "value error",
	E3003: "index out of bounds",
	E3010: "invalid argument count",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// ExitCode maps an error code onto a process exit status.
func (c ErrorCode) ExitCode() int {
	switch c {
	case E3001:
		return 3
	case E3002:
		return 4
	case E3003:
		return 5
	case E3010:
		return 2
	default:
		return 1
	}
}
