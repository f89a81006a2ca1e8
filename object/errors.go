package object

import (
	"fmt"

	"github.com/deepnoodle-ai/cstring/errors"
)

// Re-export types from errors package for convenience
type (
	TypeError  = errors.TypeError
	ValueError = errors.ValueError
	IndexError = errors.IndexError
	ArgsError  = errors.ArgsError
	ErrorKind  = errors.ErrorKind
)

// Internal constructors used throughout the package
var (
	newTypeErrorf  = errors.TypeErrorf
	newValueErrorf = errors.ValueErrorf
	newIndexErrorf = errors.IndexErrorf
	newArgsErrorf  = errors.ArgsErrorf
)

func NewArgsError(fn string, takes, given int) error {
	return newArgsErrorf("%s() takes exactly %d arguments (%d given)", fn, takes, given)
}

func NewArgsRangeError(fn string, takesMin, takesMax, given int) error {
	if takesMax-takesMin == 1 {
		return newArgsErrorf("%s() takes %d or %d arguments (%d given)",
			fn, takesMin, takesMax, given)
	}
	return newArgsErrorf("%s() takes between %d and %d arguments (%d given)",
		fn, takesMin, takesMax, given)
}

// typeName returns the name used for v in error messages.
func typeName(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case Object:
		return string(v.Type())
	default:
		return fmt.Sprintf("%T", v)
	}
}
