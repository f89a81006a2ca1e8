package object

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/deepnoodle-ai/cstring/op"
	"github.com/goccy/go-json"
)

var (
	_ Object         = (*String)(nil)
	_ Viewer         = (*String)(nil)
	_ Comparable     = (*String)(nil)
	_ Hashable       = (*String)(nil)
	_ Introspectable = (*String)(nil)
)

// String is an immutable byte string.
//
// The content is held in a single allocation of exactly Len()+1 bytes whose
// final byte is NUL, so the terminated form is available to C-style consumers
// without copying. The terminator is never part of the logical content.
//
// A String must not be copied after first use; pass *String.
type String struct {
	// buf is the content followed by one NUL byte. Empty for the zero value.
	buf string

	// hash caches the content hash. hashUnset until first computed.
	hash atomic.Int64
}

// build allocates a String of length n and lets fill write exactly n bytes
// of content into it.
func build(n int, fill func(b *strings.Builder)) *String {
	var b strings.Builder
	b.Grow(n + 1)
	fill(&b)
	b.WriteByte(0)
	return &String{buf: b.String()}
}

// NewString returns a String holding a copy of s.
func NewString(s string) *String {
	return build(len(s), func(b *strings.Builder) {
		b.WriteString(s)
	})
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte) *String {
	return build(len(b), func(sb *strings.Builder) {
		sb.Write(b)
	})
}

// New constructs a String from any byte-bearing source: another String (which
// is returned as is), a Bytes buffer, any Viewer, a Go string or a []byte.
// Other sources fail with a type error.
func New(src any) (*String, error) {
	switch src := src.(type) {
	case *String:
		return src, nil
	case *Bytes:
		return FromBytes(src.value), nil
	case Viewer:
		return NewString(src.View()), nil
	case string:
		return NewString(src), nil
	case []byte:
		return FromBytes(src), nil
	default:
		return nil, newTypeErrorf("invalid initialization type: %s", typeName(src))
	}
}

// Len returns the number of content bytes.
func (s *String) Len() int {
	if s.buf == "" {
		return 0
	}
	return len(s.buf) - 1
}

// Value returns the content.
func (s *String) Value() string {
	return s.buf[:s.Len()]
}

// View implements Viewer.
func (s *String) View() string {
	return s.Value()
}

// CString returns the content followed by a NUL byte. Consumers must not
// read past Len() bytes: the content itself may contain NUL bytes.
func (s *String) CString() string {
	if s.buf == "" {
		return "\x00"
	}
	return s.buf
}

// Bytes returns a copy of the content.
func (s *String) Bytes() []byte {
	return []byte(s.Value())
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Inspect() string {
	v := s.Value()
	sLen := len(v)
	if sLen >= 2 {
		if v[0] == '"' && v[sLen-1] == '"' {
			if strings.Count(v, "\"") == 2 {
				return fmt.Sprintf("'%s'", v)
			}
		}
	}
	return fmt.Sprintf("%q", v)
}

// String returns the content unchanged.
func (s *String) String() string {
	return s.Value()
}

func (s *String) Interface() interface{} {
	return s.Value()
}

func (s *String) IsTruthy() bool {
	return s.Len() > 0
}

// Concat returns a new String holding the content of s followed by the
// content of other, which must also be a String.
func (s *String) Concat(other Object) (*String, error) {
	right, ok := other.(*String)
	if !ok {
		return nil, newTypeErrorf("object must have type string, not %s", typeName(other))
	}
	left, rightValue := s.Value(), right.Value()
	return build(len(left)+len(rightValue), func(b *strings.Builder) {
		b.WriteString(left)
		b.WriteString(rightValue)
	}), nil
}

// Repeat returns a new String holding count copies of the content. A count
// of zero or less yields the empty string.
func (s *String) Repeat(count int) (*String, error) {
	value := s.Value()
	if count <= 0 || len(value) == 0 {
		return NewString(""), nil
	}
	if count > (math.MaxInt-1)/len(value) {
		return nil, newValueErrorf("repeated string is too long")
	}
	return build(len(value)*count, func(b *strings.Builder) {
		for i := 0; i < count; i++ {
			b.WriteString(value)
		}
	}), nil
}

// Item returns a new String of length one holding the byte at index i.
// Negative indices count from the end.
func (s *String) Item(i int) (*String, error) {
	index, err := ResolveIndex(i, s.Len())
	if err != nil {
		return nil, err
	}
	return NewString(s.Value()[index : index+1]), nil
}

// RunOperation applies a binary operator with s as the left operand:
// string + string concatenates, string * int repeats.
func (s *String) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	switch opType {
	case op.Add:
		return s.Concat(right)
	case op.Multiply:
		count, ok := right.(*Int)
		if !ok {
			return nil, newTypeErrorf("can't multiply string by non-int of type %s", typeName(right))
		}
		if count.value > math.MaxInt || count.value < math.MinInt {
			return nil, newValueErrorf("repeated string is too long")
		}
		return s.Repeat(int(count.value))
	default:
		return nil, newTypeErrorf("unsupported operation for string: %v on type %s", opType, typeName(right))
	}
}

func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value())
}
