package object

import (
	"fmt"
	"math"
	"testing"

	"github.com/deepnoodle-ai/cstring/errors"
	"github.com/deepnoodle-ai/cstring/op"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestStringBasics(t *testing.T) {
	value := NewString("abcd")
	assert.Equal(t, value.Type(), STRING)
	assert.Equal(t, value.Value(), "abcd")
	assert.Equal(t, value.String(), "abcd")
	assert.Equal(t, value.Inspect(), `"abcd"`)
	assert.Equal(t, value.Interface(), "abcd")
	assert.Equal(t, value.Len(), 4)
	assert.True(t, value.IsTruthy())
	assert.True(t, value.Equals(NewString("abcd")))
	assert.False(t, value.Equals(NewInt(4)))
	assert.False(t, NewString("").IsTruthy())
}

func TestStringStorage(t *testing.T) {
	s := NewString("hello")
	assert.Equal(t, s.CString(), "hello\x00")
	assert.Equal(t, len(s.CString()), s.Len()+1)

	// Embedded NUL bytes are content, the terminator is not.
	n := NewString("a\x00b")
	assert.Equal(t, n.Len(), 3)
	assert.Equal(t, n.Value(), "a\x00b")
	assert.Equal(t, n.CString(), "a\x00b\x00")

	var zero String
	assert.Equal(t, zero.Len(), 0)
	assert.Equal(t, zero.Value(), "")
	assert.Equal(t, zero.CString(), "\x00")
}

func TestStringBytesIsCopy(t *testing.T) {
	s := NewString("hello")
	b := s.Bytes()
	b[0] = 'j'
	assert.Equal(t, s.Value(), "hello")
}

func TestStringRoundTrip(t *testing.T) {
	for _, content := range []string{"", "hello, world", "\x00\xff\x80", "🙂 🙃", `"quoted"`} {
		s := NewString(content)
		assert.Equal(t, s.String(), content)
		assert.Equal(t, string(FromBytes([]byte(content)).Bytes()), content)
	}
}

func TestNew(t *testing.T) {
	original := NewString("hello, world")

	fromString, err := New("hello, world")
	assert.Nil(t, err)
	assert.True(t, fromString.Equals(original))

	fromBytes, err := New([]byte("hello, world"))
	assert.Nil(t, err)
	assert.True(t, fromBytes.Equals(original))

	buf := []byte("hello, world")
	fromBuffer, err := New(NewBytes(buf))
	assert.Nil(t, err)
	assert.True(t, fromBuffer.Equals(original))
	buf[0] = 'j'
	assert.Equal(t, fromBuffer.Value(), "hello, world")

	same, err := New(original)
	assert.Nil(t, err)
	assert.True(t, same == original)
}

type viewerFunc func() string

func (f viewerFunc) View() string { return f() }

func TestNewFromViewer(t *testing.T) {
	s, err := New(viewerFunc(func() string { return "viewed" }))
	assert.Nil(t, err)
	assert.Equal(t, s.Value(), "viewed")
}

func TestNewInvalidType(t *testing.T) {
	tests := []struct {
		src      any
		expected string
	}{
		{42, "type error: invalid initialization type: int"},
		{NewInt(42), "type error: invalid initialization type: int"},
		{3.5, "type error: invalid initialization type: float64"},
		{nil, "type error: invalid initialization type: nil"},
	}
	for _, tc := range tests {
		s, err := New(tc.src)
		assert.Nil(t, s)
		assert.NotNil(t, err)
		assert.Equal(t, err.Error(), tc.expected)
		assert.Equal(t, errors.KindOf(err), errors.ErrType)
	}
}

func TestStringConcat(t *testing.T) {
	result, err := NewString("hello").Concat(NewString(" world"))
	assert.Nil(t, err)
	assert.Equal(t, result.Value(), "hello world")
	assert.Equal(t, result.Len(), 11)
	assert.Equal(t, result.CString(), "hello world\x00")

	empty, err := NewString("").Concat(NewString(""))
	assert.Nil(t, err)
	assert.Equal(t, empty.Len(), 0)

	_, err = NewString("hello").Concat(NewInt(1))
	assert.NotNil(t, err)
	assert.Equal(t, err.Error(), "type error: object must have type string, not int")
}

func TestStringConcatLength(t *testing.T) {
	for _, content := range []string{"", "a", "abc", "hello, world"} {
		s := NewString(content)
		doubled, err := s.Concat(s)
		assert.Nil(t, err)
		assert.Equal(t, doubled.Len(), 2*s.Len())
	}
}

func TestStringRepeat(t *testing.T) {
	tests := []struct {
		s        string
		count    int
		expected string
	}{
		{"ab", 3, "ababab"},
		{"ab", 1, "ab"},
		{"ab", 0, ""},
		{"ab", -5, ""},
		{"", 10, ""},
		{"x", 5, "xxxxx"},
	}
	for _, tc := range tests {
		result, err := NewString(tc.s).Repeat(tc.count)
		assert.Nil(t, err)
		assert.Equal(t, result.Value(), tc.expected, "%q * %d", tc.s, tc.count)
		assert.Equal(t, result.Len(), max(0, tc.count)*len(tc.s))
	}
}

func TestStringRepeatEmptyReceiver(t *testing.T) {
	for _, count := range []int{1, 1 << 30, math.MaxInt} {
		result, err := NewString("").Repeat(count)
		assert.Nil(t, err)
		assert.Equal(t, result.Len(), 0, "count %d", count)
		assert.Equal(t, result.CString(), "\x00")
	}

	result, err := NewString("").RunOperation(op.Multiply, NewInt(1<<62))
	assert.Nil(t, err)
	assert.Equal(t, result.(*String).Len(), 0)
}

func TestStringRepeatTooLong(t *testing.T) {
	_, err := NewString("ab").Repeat(int(^uint(0) >> 1))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.ErrValue)
}

func TestStringItem(t *testing.T) {
	tests := []struct {
		s           string
		index       int
		expected    string
		expectedErr string
	}{
		{"", 0, "", "index error: index out of range: 0"},
		{"a", 0, "a", ""},
		{"a", -1, "a", ""},
		{"a", -2, "", "index error: index out of range: -2"},
		{"hello", 1, "e", ""},
		{"012345", 5, "5", ""},
		{"012345", -1, "5", ""},
		{"012345", -6, "0", ""},
		{"test", 10, "", "index error: index out of range: 10"},
	}
	for _, tc := range tests {
		msg := fmt.Sprintf("%v[%d]", tc.s, tc.index)
		result, err := NewString(tc.s).Item(tc.index)
		if tc.expectedErr != "" {
			assert.NotNil(t, err, msg)
			assert.Equal(t, err.Error(), tc.expectedErr, msg)
			assert.Equal(t, errors.KindOf(err), errors.ErrIndex, msg)
		} else {
			assert.Nil(t, err, msg)
			assert.Equal(t, result.Value(), tc.expected, msg)
			assert.Equal(t, result.Len(), 1, msg)
		}
	}
}

func TestStringRunOperation(t *testing.T) {
	s := NewString("ab")

	result, err := s.RunOperation(op.Add, NewString("cd"))
	assert.Nil(t, err)
	assert.Equal(t, result.(*String).Value(), "abcd")

	result, err = s.RunOperation(op.Multiply, NewInt(3))
	assert.Nil(t, err)
	assert.Equal(t, result.(*String).Value(), "ababab")

	_, err = s.RunOperation(op.Multiply, NewString("3"))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.ErrType)

	_, err = s.RunOperation(op.Add, NewInt(3))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.ErrType)

	_, err = s.RunOperation(op.BinaryOpType(99), NewString("x"))
	assert.NotNil(t, err)
}

func TestStringDerivedValuesAreFresh(t *testing.T) {
	s := NewString("abc")
	whole, err := s.GetSlice(Slice{})
	assert.Nil(t, err)
	assert.True(t, whole != s)
	assert.True(t, whole.Equals(s))

	once, err := s.Repeat(1)
	assert.Nil(t, err)
	assert.True(t, once != s)
}

func TestStringInspect(t *testing.T) {
	tests := []struct {
		s        string
		expected string
	}{
		{"hello", `"hello"`},
		{`"hello" "world"`, `"\"hello\" \"world\""`},
		{`"quoted"`, `'"quoted"'`},
		{"tab\there", `"tab\there"`},
		{"\xff", `"\xff"`},
	}
	for _, tc := range tests {
		assert.Equal(t, NewString(tc.s).Inspect(), tc.expected)
	}
}

func TestStringMarshalJSON(t *testing.T) {
	data, err := NewString(`say "hi"`).MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(data), `"say \"hi\""`)
}
