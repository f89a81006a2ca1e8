// Package errors defines the error types surfaced by cstring operations.
//
// Every failure belongs to one of a small number of classes that a host
// runtime can map onto its own exception types:
//
//   - TypeError: an operand has the wrong type (comparison, concatenation,
//     search needles, construction sources).
//   - IndexError: an integer index resolves outside the string.
//   - ValueError: a required match is absent, or a value is invalid
//     (for example a zero slice step).
//   - ArgsError: the wrong number of arguments was passed to a method.
//
// Errors are plain Go errors. Use KindOf to recover the class of an error
// that may have been wrapped.
package errors

import (
	"errors"
	"fmt"
)

// TypeError is used to indicate an invalid type was supplied.
type TypeError struct {
	Err error
}

func (t *TypeError) Error() string {
	return t.Err.Error()
}

func (t *TypeError) Unwrap() error {
	return t.Err
}

func (t *TypeError) Kind() ErrorKind {
	return ErrType
}

func NewTypeError(err error) *TypeError {
	return &TypeError{Err: err}
}

func TypeErrorf(format string, args ...any) *TypeError {
	return NewTypeError(fmt.Errorf("type error: "+format, args...))
}

// ValueError is used to indicate an invalid value for an operation.
// Examples: a substring that must be present but is not, a zero slice step.
type ValueError struct {
	Err error
}

func (v *ValueError) Error() string {
	return v.Err.Error()
}

func (v *ValueError) Unwrap() error {
	return v.Err
}

func (v *ValueError) Kind() ErrorKind {
	return ErrValue
}

func NewValueError(err error) *ValueError {
	return &ValueError{Err: err}
}

func ValueErrorf(format string, args ...any) *ValueError {
	return NewValueError(fmt.Errorf("value error: "+format, args...))
}

// IndexError is used to indicate an index is out of bounds.
type IndexError struct {
	Err error
}

func (i *IndexError) Error() string {
	return i.Err.Error()
}

func (i *IndexError) Unwrap() error {
	return i.Err
}

func (i *IndexError) Kind() ErrorKind {
	return ErrIndex
}

func NewIndexError(err error) *IndexError {
	return &IndexError{Err: err}
}

func IndexErrorf(format string, args ...any) *IndexError {
	return NewIndexError(fmt.Errorf("index error: "+format, args...))
}

// ArgsError is used to indicate an error that occurred while processing
// method arguments, such as passing too many or too few of them.
type ArgsError struct {
	Err error
}

func (a *ArgsError) Error() string {
	return a.Err.Error()
}

func (a *ArgsError) Unwrap() error {
	return a.Err
}

func (a *ArgsError) Kind() ErrorKind {
	return ErrArgs
}

func NewArgsError(err error) *ArgsError {
	return &ArgsError{Err: err}
}

func ArgsErrorf(format string, args ...any) *ArgsError {
	return NewArgsError(fmt.Errorf("args error: "+format, args...))
}

// kinded is implemented by every error type in this package.
type kinded interface {
	error
	Kind() ErrorKind
}

// KindOf returns the class of err, looking through any wrapping. Errors that
// did not originate in this package report ErrRuntime.
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ErrRuntime
}

// Is reports whether err belongs to the given class.
func Is(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
