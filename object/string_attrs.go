package object

import (
	"context"
	"math"
)

// stringAttrs defines all attributes available on string objects.
// This is the single source of truth for string methods.
var stringAttrs = []AttrSpec{
	{Name: "count", Doc: "Count non-overlapping occurrences of substring", Args: []string{"sub", "start?", "end?"}, Returns: "int"},
	{Name: "decode", Doc: "Decode the bytes as text in the given encoding", Args: []string{"encoding"}, Returns: "string"},
	{Name: "endswith", Doc: "Check if the region ends with suffix", Args: []string{"suffix", "start?", "end?"}, Returns: "bool"},
	{Name: "find", Doc: "Find first index of substring (-1 if not found)", Args: []string{"sub", "start?", "end?"}, Returns: "int"},
	{Name: "index", Doc: "Find first index of substring (error if not found)", Args: []string{"sub", "start?", "end?"}, Returns: "int"},
	{Name: "isalnum", Doc: "Check if all bytes are letters or digits", Args: nil, Returns: "bool"},
	{Name: "isalpha", Doc: "Check if all bytes are letters", Args: nil, Returns: "bool"},
	{Name: "isdigit", Doc: "Check if all bytes are digits", Args: nil, Returns: "bool"},
	{Name: "islower", Doc: "Check if all letters are lowercase", Args: nil, Returns: "bool"},
	{Name: "isprintable", Doc: "Check if all bytes are printable", Args: nil, Returns: "bool"},
	{Name: "isspace", Doc: "Check if all bytes are whitespace", Args: nil, Returns: "bool"},
	{Name: "isupper", Doc: "Check if all letters are uppercase", Args: nil, Returns: "bool"},
	{Name: "rfind", Doc: "Find last index of substring (-1 if not found)", Args: []string{"sub", "start?", "end?"}, Returns: "int"},
	{Name: "rindex", Doc: "Find last index of substring (error if not found)", Args: []string{"sub", "start?", "end?"}, Returns: "int"},
	{Name: "startswith", Doc: "Check if the region starts with prefix", Args: []string{"prefix", "start?", "end?"}, Returns: "bool"},
}

// Attrs returns the attribute specifications for string objects.
func (s *String) Attrs() []AttrSpec {
	return stringAttrs
}

func (s *String) GetAttr(name string) (Object, bool) {
	switch name {
	case "count":
		return s.searchMethod(name, func(needle Object, bounds []int) (Object, error) {
			return intResult(s.Count(needle, bounds...))
		}), true
	case "find":
		return s.searchMethod(name, func(needle Object, bounds []int) (Object, error) {
			return intResult(s.Find(needle, bounds...))
		}), true
	case "index":
		return s.searchMethod(name, func(needle Object, bounds []int) (Object, error) {
			return intResult(s.Index(needle, bounds...))
		}), true
	case "rfind":
		return s.searchMethod(name, func(needle Object, bounds []int) (Object, error) {
			return intResult(s.RFind(needle, bounds...))
		}), true
	case "rindex":
		return s.searchMethod(name, func(needle Object, bounds []int) (Object, error) {
			return intResult(s.RIndex(needle, bounds...))
		}), true
	case "startswith":
		return s.searchMethod(name, func(needle Object, bounds []int) (Object, error) {
			return boolResult(s.StartsWith(needle, bounds...))
		}), true
	case "endswith":
		return s.searchMethod(name, func(needle Object, bounds []int) (Object, error) {
			return boolResult(s.EndsWith(needle, bounds...))
		}), true
	case "isalnum":
		return s.predicateMethod(name, s.IsAlnum), true
	case "isalpha":
		return s.predicateMethod(name, s.IsAlpha), true
	case "isdigit":
		return s.predicateMethod(name, s.IsDigit), true
	case "islower":
		return s.predicateMethod(name, s.IsLower), true
	case "isprintable":
		return s.predicateMethod(name, s.IsPrintable), true
	case "isspace":
		return s.predicateMethod(name, s.IsSpace), true
	case "isupper":
		return s.predicateMethod(name, s.IsUpper), true
	case "decode":
		return NewBuiltin("string.decode", func(ctx context.Context, args ...Object) (Object, error) {
			if len(args) != 1 {
				return nil, NewArgsError("string.decode", 1, len(args))
			}
			encoding, err := AsString(args[0])
			if err != nil {
				return nil, err
			}
			text, err := s.Decode(encoding.Value())
			if err != nil {
				return nil, err
			}
			return NewString(text), nil
		}), true
	}
	return nil, false
}

// searchMethod wraps a search operation taking a needle and up to two
// optional integer bounds. A nil bound is treated as omitted.
func (s *String) searchMethod(name string, fn func(needle Object, bounds []int) (Object, error)) *Builtin {
	qualified := "string." + name
	return NewBuiltin(qualified, func(ctx context.Context, args ...Object) (Object, error) {
		if len(args) < 1 || len(args) > 3 {
			return nil, NewArgsRangeError(qualified, 1, 3, len(args))
		}
		bounds := make([]int, 0, 2)
		for i, arg := range args[1:] {
			if _, isNil := arg.(*NilType); isNil {
				if i == 0 {
					bounds = append(bounds, 0)
				} else {
					bounds = append(bounds, math.MaxInt)
				}
				continue
			}
			v, err := AsInt(arg)
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, clampInt64(v))
		}
		return fn(args[0], bounds)
	})
}

func (s *String) predicateMethod(name string, fn func() bool) *Builtin {
	qualified := "string." + name
	return NewBuiltin(qualified, func(ctx context.Context, args ...Object) (Object, error) {
		if len(args) != 0 {
			return nil, NewArgsError(qualified, 0, len(args))
		}
		return NewBool(fn()), nil
	})
}

func intResult(i int, err error) (Object, error) {
	if err != nil {
		return nil, err
	}
	return NewInt(int64(i)), nil
}

func boolResult(b bool, err error) (Object, error) {
	if err != nil {
		return nil, err
	}
	return NewBool(b), nil
}
