package object

import (
	"fmt"
	"math"
	"strings"
)

// ResolveIndex checks that the index is inbounds and transforms a negative
// index into the corresponding positive index. If the index is out of bounds,
// an index error is returned.
func ResolveIndex(idx int, size int) (int, error) {
	resolved := idx
	if resolved < 0 {
		// -1 is the last item
		resolved += size
	}
	if resolved < 0 || resolved >= size {
		return 0, newIndexErrorf("index out of range: %d", idx)
	}
	return resolved, nil
}

// ResolveSlice normalizes a slice over a sequence of the given size. It
// returns the first position visited, the stop position (exclusive), the step
// and the number of positions visited. Out of range bounds are clamped; only
// a zero step or a non-integer bound is an error.
func ResolveSlice(slice Slice, size int) (start, stop, step, n int, err error) {
	step = 1
	if isSet(slice.Step) {
		if step, err = sliceBound(slice.Step, "step"); err != nil {
			return
		}
		if step == 0 {
			err = newValueErrorf("slice step cannot be zero")
			return
		}
		// Keep -step representable.
		if step < -math.MaxInt {
			step = -math.MaxInt
		}
	}
	if step < 0 {
		start, stop = math.MaxInt, math.MinInt
	} else {
		start, stop = 0, math.MaxInt
	}
	if isSet(slice.Start) {
		if start, err = sliceBound(slice.Start, "start"); err != nil {
			return
		}
	}
	if isSet(slice.Stop) {
		if stop, err = sliceBound(slice.Stop, "stop"); err != nil {
			return
		}
	}
	start = clampSliceBound(start, size, step)
	stop = clampSliceBound(stop, size, step)
	switch {
	case step < 0 && stop < start:
		n = (start-stop-1)/(-step) + 1
	case step > 0 && start < stop:
		n = (stop-start-1)/step + 1
	}
	return
}

// clampSliceBound maps a bound into [0, size] for a positive step and into
// [-1, size-1] for a negative step.
func clampSliceBound(idx, size, step int) int {
	if idx < 0 {
		idx += size
		if idx < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return idx
	}
	if idx >= size {
		if step < 0 {
			return size - 1
		}
		return size
	}
	return idx
}

// isSet reports whether a slice bound was supplied. Nil counts as omitted.
func isSet(obj Object) bool {
	if obj == nil {
		return false
	}
	_, isNil := obj.(*NilType)
	return !isNil
}

func sliceBound(obj Object, name string) (int, error) {
	i, ok := obj.(*Int)
	if !ok {
		return 0, newTypeErrorf("slice %s index must be an int (got %s)", name, typeName(obj))
	}
	return clampInt64(i.value), nil
}

// clampInt64 saturates v into the platform int range.
func clampInt64(v int64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	if v < math.MinInt {
		return math.MinInt
	}
	return int(v)
}

// GetSlice returns a new String holding the bytes visited by the slice, in
// traversal order.
func (s *String) GetSlice(slice Slice) (*String, error) {
	start, _, step, n, err := ResolveSlice(slice, s.Len())
	if err != nil {
		return nil, err
	}
	value := s.Value()
	if step == 1 {
		return NewString(value[start : start+n]), nil
	}
	return build(n, func(b *strings.Builder) {
		for i, j := 0, start; i < n; i, j = i+1, j+step {
			b.WriteByte(value[j])
		}
	}), nil
}

// GetItem implements the subscript operator: an *Int selects a single byte,
// a Slice selects a range.
func (s *String) GetItem(key Object) (Object, error) {
	switch key := key.(type) {
	case *Int:
		return s.Item(clampInt64(key.value))
	case Slice:
		return s.GetSlice(key)
	case *Slice:
		return s.GetSlice(*key)
	default:
		return nil, newTypeErrorf("subscript must be int or slice, not %s", typeName(key))
	}
}

// Slice implements Object so that it can be passed as a subscript key.

func (s Slice) Type() Type {
	return SLICE
}

func (s Slice) Inspect() string {
	return fmt.Sprintf("slice(%s, %s, %s)", boundString(s.Start), boundString(s.Stop), boundString(s.Step))
}

func (s Slice) Interface() interface{} {
	return s
}

func (s Slice) Equals(other Object) bool {
	o, ok := other.(Slice)
	if !ok {
		return false
	}
	return boundEquals(s.Start, o.Start) && boundEquals(s.Stop, o.Stop) && boundEquals(s.Step, o.Step)
}

func boundString(obj Object) string {
	if obj == nil {
		return "null"
	}
	return obj.Inspect()
}

func boundEquals(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}
