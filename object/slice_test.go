package object

import (
	"fmt"
	"testing"

	"github.com/deepnoodle-ai/cstring/errors"
	"github.com/deepnoodle-ai/wonton/assert"
)

func ip(i int) *int {
	return &i
}

func TestResolveIndex(t *testing.T) {
	tests := []struct {
		idx, size   int
		expected    int
		expectedErr string
	}{
		{0, 3, 0, ""},
		{2, 3, 2, ""},
		{-1, 3, 2, ""},
		{-3, 3, 0, ""},
		{3, 3, 0, "index error: index out of range: 3"},
		{-4, 3, 0, "index error: index out of range: -4"},
		{0, 0, 0, "index error: index out of range: 0"},
	}
	for _, tc := range tests {
		result, err := ResolveIndex(tc.idx, tc.size)
		if tc.expectedErr != "" {
			assert.NotNil(t, err)
			assert.Equal(t, err.Error(), tc.expectedErr)
			continue
		}
		assert.Nil(t, err)
		assert.Equal(t, result, tc.expected)
	}
}

func TestResolveSlice(t *testing.T) {
	tests := []struct {
		start, stop, step *int
		size              int
		expStart, expStep int
		expN              int
	}{
		{nil, nil, nil, 5, 0, 1, 5},
		{ip(1), ip(4), nil, 5, 1, 1, 3},
		{ip(-100), ip(100), nil, 5, 0, 1, 5},
		{ip(4), ip(1), nil, 5, 4, 1, 0},
		{nil, nil, ip(-1), 5, 4, -1, 5},
		{ip(100), ip(-100), ip(-1), 5, 4, -1, 5},
		{ip(1), ip(-1), ip(2), 12, 1, 2, 5},
		{ip(-1), ip(3), ip(-3), 12, 11, -3, 3},
		{nil, nil, ip(2), 0, 0, 2, 0},
		{nil, nil, ip(-1), 0, -1, -1, 0},
	}
	for _, tc := range tests {
		start, _, step, n, err := ResolveSlice(NewSlice(tc.start, tc.stop, tc.step), tc.size)
		assert.Nil(t, err)
		assert.Equal(t, start, tc.expStart)
		assert.Equal(t, step, tc.expStep)
		assert.Equal(t, n, tc.expN)
	}
}

func TestResolveSliceErrors(t *testing.T) {
	_, _, _, _, err := ResolveSlice(NewSlice(nil, nil, ip(0)), 5)
	assert.NotNil(t, err)
	assert.Equal(t, err.Error(), "value error: slice step cannot be zero")
	assert.Equal(t, errors.KindOf(err), errors.ErrValue)

	_, _, _, _, err = ResolveSlice(Slice{Start: NewString("1")}, 5)
	assert.NotNil(t, err)
	assert.Equal(t, err.Error(), "type error: slice start index must be an int (got string)")

	// Nil bounds are omitted bounds.
	start, stop, step, n, err := ResolveSlice(Slice{Start: Nil, Stop: Nil, Step: Nil}, 5)
	assert.Nil(t, err)
	assert.Equal(t, []int{start, stop, step, n}, []int{0, 5, 1, 5})
}

func TestStringGetSlice(t *testing.T) {
	tests := []struct {
		s                 string
		start, stop, step *int
		expected          string
	}{
		{"hello", ip(1), ip(4), nil, "ell"},
		{"hello", nil, nil, ip(-1), "olleh"},
		{"Hello", nil, nil, ip(-1), "olleH"},
		{"Hello", ip(1), ip(4), nil, "ell"},
		{"hello", ip(2), ip(1), nil, ""},
		{"hello, world", ip(1), ip(-1), ip(2), "el,wr"},
		{"hello, world", ip(-1), ip(3), ip(-3), "do,"},
		{"hello", ip(-3), nil, nil, "llo"},
		{"hello", nil, ip(-3), nil, "he"},
		{"hello", ip(-100), ip(100), nil, "hello"},
		{"hello", ip(10), ip(20), nil, ""},
		{"hello", nil, nil, ip(2), "hlo"},
		{"hello", ip(3), nil, ip(-2), "lh"},
		{"", nil, nil, ip(-1), ""},
		{"abc", ip(0), ip(3), ip(1), "abc"},
	}
	for _, tc := range tests {
		slice := NewSlice(tc.start, tc.stop, tc.step)
		msg := fmt.Sprintf("%q%s", tc.s, slice.Inspect())
		result, err := NewString(tc.s).GetSlice(slice)
		assert.Nil(t, err, msg)
		assert.Equal(t, result.Value(), tc.expected, msg)
		assert.Equal(t, result.CString(), tc.expected+"\x00", msg)
	}
}

func TestStringGetSliceZeroStep(t *testing.T) {
	_, err := NewString("hello").GetSlice(NewSlice(nil, nil, ip(0)))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.ErrValue)
}

func TestStringSliceIdentities(t *testing.T) {
	for _, content := range []string{"", "a", "ab", "hello, world", "\x00\xff\x01"} {
		s := NewString(content)

		whole, err := s.GetSlice(NewSlice(ip(0), ip(s.Len()), ip(1)))
		assert.Nil(t, err)
		assert.True(t, whole.Equals(s), "s[0:len(s):1] for %q", content)

		reversed, err := s.GetSlice(NewSlice(nil, nil, ip(-1)))
		assert.Nil(t, err)
		back, err := reversed.GetSlice(NewSlice(nil, nil, ip(-1)))
		assert.Nil(t, err)
		assert.True(t, back.Equals(s), "s[::-1][::-1] for %q", content)
	}
}

func TestStringGetItem(t *testing.T) {
	s := NewString("hello")

	item, err := s.GetItem(NewInt(1))
	assert.Nil(t, err)
	assert.True(t, item.Equals(NewString("e")))

	item, err = s.GetItem(NewInt(-1))
	assert.Nil(t, err)
	assert.True(t, item.Equals(NewString("o")))

	sliced, err := s.GetItem(NewSlice(ip(1), ip(4), nil))
	assert.Nil(t, err)
	assert.True(t, sliced.Equals(NewString("ell")))

	slice := NewSlice(nil, nil, ip(-1))
	sliced, err = s.GetItem(&slice)
	assert.Nil(t, err)
	assert.True(t, sliced.Equals(NewString("olleh")))

	_, err = s.GetItem(NewInt(10))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.ErrIndex)

	_, err = s.GetItem(NewString("1"))
	assert.NotNil(t, err)
	assert.Equal(t, err.Error(), "type error: subscript must be int or slice, not string")
}

func TestSliceObject(t *testing.T) {
	a := NewSlice(ip(1), nil, ip(2))
	b := NewSlice(ip(1), nil, ip(2))
	c := NewSlice(ip(1), ip(2), nil)
	assert.Equal(t, a.Type(), SLICE)
	assert.Equal(t, a.Inspect(), "slice(1, null, 2)")
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(NewInt(1)))
}
