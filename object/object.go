// Package object provides the immutable byte string type and the small set
// of host values it interoperates with.
//
// The central type is *String: an owned, fixed-content byte sequence with
// value semantics, a cached content hash, and the classic string algorithms
// (indexing, slicing with stride, concatenation, repetition, substring
// search and character-class predicates). A String never changes after it is
// constructed; every operation returns a new value or a primitive result.
//
// The remaining types model the host side of the boundary:
//
//	switch obj := obj.(type) {
//	case *object.String:
//		// do something with obj.Value()
//	case *object.Int:
//		// do something with obj.Value()
//	}
//
// Any value that can present its content as raw bytes implements Viewer and
// can be used to construct a String or as a search needle.
package object

import (
	"context"
)

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL    Type = "bool"
	BUILTIN Type = "builtin"
	BYTES   Type = "bytes"
	INT     Type = "int"
	NIL     Type = "nil"
	SLICE   Type = "slice"
	STRING  Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all host-visible values implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Returns true if the given object is equal to this object.
	Equals(other Object) bool
}

// Viewer is implemented by values that can present their content as a
// read-only sequence of bytes. The returned string must not be retained
// beyond the lifetime of the value if the value is mutable.
type Viewer interface {
	View() string
}

// Comparable is an interface used to compare two objects.
//
//	-1 if this < other
//	 0 if this == other
//	 1 if this > other
type Comparable interface {
	Compare(other Object) (int, error)
}

// Hashable is implemented by objects that may be used as map keys by a host.
type Hashable interface {
	HashKey() HashKey
}

// HashKey identifies an object by type and content hash.
type HashKey struct {
	Type  Type
	Value int64
}

// Callable is an interface for objects that can be invoked as functions.
type Callable interface {
	// Call invokes the callable with the given arguments and returns the result.
	Call(ctx context.Context, args ...Object) (Object, error)
}

// Introspectable is implemented by objects that can describe their attributes.
type Introspectable interface {
	// Attrs returns the attribute specifications for this object.
	Attrs() []AttrSpec

	// GetAttr returns the attribute with the given name from this object.
	GetAttr(name string) (Object, bool)
}

// Slice is used to specify a range of items in a string. Each field is
// either nil, meaning the bound was omitted, or an *Int.
type Slice struct {
	Start Object
	Stop  Object
	Step  Object
}

// NewSlice builds a Slice from optional integer bounds.
func NewSlice(start, stop, step *int) Slice {
	var s Slice
	if start != nil {
		s.Start = NewInt(int64(*start))
	}
	if stop != nil {
		s.Stop = NewInt(int64(*stop))
	}
	if step != nil {
		s.Step = NewInt(int64(*step))
	}
	return s
}
