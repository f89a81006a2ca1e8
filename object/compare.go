package object

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/deepnoodle-ai/cstring/op"
)

// hashUnset marks a String whose hash has not been computed yet. A computed
// hash that happens to equal hashUnset is stored as hashRemap instead.
const (
	hashUnset int64 = 0
	hashRemap int64 = 1
)

// Compare orders s and other byte by byte, treating bytes as unsigned. When
// one operand is a prefix of the other, the shorter one orders first.
func (s *String) Compare(other Object) (int, error) {
	otherStr, ok := other.(*String)
	if !ok {
		return 0, newTypeErrorf("unable to compare string and %s", typeName(other))
	}
	return strings.Compare(s.Value(), otherStr.Value()), nil
}

// CompareOp evaluates a relational operator with s as the left operand.
func (s *String) CompareOp(cop op.CompareOpType, other Object) (bool, error) {
	cmp, err := s.Compare(other)
	if err != nil {
		return false, err
	}
	switch cop {
	case op.LessThan, op.LessThanOrEqual, op.Equal,
		op.NotEqual, op.GreaterThan, op.GreaterThanOrEqual:
		return cop.Holds(cmp), nil
	default:
		return false, newTypeErrorf("invalid compare operation: %d", cop)
	}
}

func (s *String) Equals(other Object) bool {
	otherStr, ok := other.(*String)
	if !ok {
		return false
	}
	return s.Value() == otherStr.Value()
}

// Hash returns a hash of the content. It is computed on first use and cached;
// strings with equal content always hash equally.
func (s *String) Hash() int64 {
	if h := s.hash.Load(); h != hashUnset {
		return h
	}
	h := int64(xxhash.Sum64String(s.Value()))
	if h == hashUnset {
		h = hashRemap
	}
	// Racing callers store the same value.
	s.hash.Store(h)
	return h
}

func (s *String) HashKey() HashKey {
	return HashKey{Type: STRING, Value: s.Hash()}
}
