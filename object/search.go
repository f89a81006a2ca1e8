package object

import (
	"strings"
)

// searchRange is a needle resolved against the bounded region
// [start, end) of a haystack. start may exceed end, in which case the region
// is empty and nothing matches.
type searchRange struct {
	hay    string
	needle string
	start  int
	end    int
}

// searchArgs resolves the arguments shared by the search family: a needle
// viewable as bytes and up to two optional bounds, start and end.
func (s *String) searchArgs(method string, needle any, bounds []int) (searchRange, error) {
	if len(bounds) > 2 {
		return searchRange{}, NewArgsRangeError(method, 1, 3, len(bounds)+1)
	}
	sub, err := AsView(needle)
	if err != nil {
		return searchRange{}, err
	}
	hay := s.Value()
	start, end := 0, len(hay)
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		end = bounds[1]
	}
	return searchRange{
		hay:    hay,
		needle: sub,
		start:  fixIndex(start, len(hay)),
		end:    fixIndex(end, len(hay)),
	}, nil
}

// fixIndex maps a possibly negative bound into [0, length]. It never fails.
func fixIndex(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return 0
		}
	}
	if i > length {
		return length
	}
	return i
}

// width is the length of the region, negative when it is inverted.
func (r searchRange) width() int {
	return r.end - r.start
}

func (r searchRange) region() string {
	return r.hay[r.start:r.end]
}

func (r searchRange) find() int {
	if r.width() < 0 {
		return -1
	}
	i := strings.Index(r.region(), r.needle)
	if i < 0 {
		return -1
	}
	return r.start + i
}

func (r searchRange) rfind() int {
	if r.width() < 0 {
		return -1
	}
	i := strings.LastIndex(r.region(), r.needle)
	if i < 0 {
		return -1
	}
	return r.start + i
}

func (r searchRange) count() int {
	if r.width() < 0 {
		return 0
	}
	if r.needle == "" {
		// The empty needle matches at every position, including the end.
		return r.width() + 1
	}
	return strings.Count(r.region(), r.needle)
}

func (r searchRange) hasPrefix() bool {
	if r.width() < len(r.needle) {
		return false
	}
	return r.hay[r.start:r.start+len(r.needle)] == r.needle
}

func (r searchRange) hasSuffix() bool {
	if r.width() < len(r.needle) {
		return false
	}
	return r.hay[r.end-len(r.needle):r.end] == r.needle
}

// Count returns the number of non-overlapping occurrences of needle in the
// region [start, end), scanning left to right. Bounds are optional and follow
// the slice convention for negative values.
func (s *String) Count(needle any, bounds ...int) (int, error) {
	r, err := s.searchArgs("count", needle, bounds)
	if err != nil {
		return 0, err
	}
	return r.count(), nil
}

// Find returns the position of the first occurrence of needle lying entirely
// within [start, end), or -1. An empty needle is found at start.
func (s *String) Find(needle any, bounds ...int) (int, error) {
	r, err := s.searchArgs("find", needle, bounds)
	if err != nil {
		return 0, err
	}
	return r.find(), nil
}

// Index is like Find but fails with a value error when needle is absent.
func (s *String) Index(needle any, bounds ...int) (int, error) {
	r, err := s.searchArgs("index", needle, bounds)
	if err != nil {
		return 0, err
	}
	i := r.find()
	if i < 0 {
		return 0, newValueErrorf("substring not found")
	}
	return i, nil
}

// RFind returns the position of the last occurrence of needle lying entirely
// within [start, end), or -1. An empty needle is found at end.
func (s *String) RFind(needle any, bounds ...int) (int, error) {
	r, err := s.searchArgs("rfind", needle, bounds)
	if err != nil {
		return 0, err
	}
	return r.rfind(), nil
}

// RIndex is like RFind but fails with a value error when needle is absent.
func (s *String) RIndex(needle any, bounds ...int) (int, error) {
	r, err := s.searchArgs("rindex", needle, bounds)
	if err != nil {
		return 0, err
	}
	i := r.rfind()
	if i < 0 {
		return 0, newValueErrorf("substring not found")
	}
	return i, nil
}

// StartsWith reports whether the region [start, end) begins with needle.
func (s *String) StartsWith(needle any, bounds ...int) (bool, error) {
	r, err := s.searchArgs("startswith", needle, bounds)
	if err != nil {
		return false, err
	}
	return r.hasPrefix(), nil
}

// EndsWith reports whether the region [start, end) ends with needle.
func (s *String) EndsWith(needle any, bounds ...int) (bool, error) {
	r, err := s.searchArgs("endswith", needle, bounds)
	if err != nil {
		return false, err
	}
	return r.hasSuffix(), nil
}

// Contains reports whether needle occurs anywhere in s.
func (s *String) Contains(needle any) (bool, error) {
	sub, err := AsView(needle)
	if err != nil {
		return false, err
	}
	return strings.Contains(s.Value(), sub), nil
}
