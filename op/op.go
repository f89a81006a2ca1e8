// Package op defines the operator types a host can apply to string values.
package op

// BinaryOpType describes a type of binary operation, as in an operation that
// takes two operands. Strings support concatenation and repetition.
type BinaryOpType uint16

const (
	Add      BinaryOpType = 1
	Multiply BinaryOpType = 3
)

// String returns a string representation of the binary operation.
// For example "+" for addition.
func (bop BinaryOpType) String() string {
	switch bop {
	case Add:
		return "+"
	case Multiply:
		return "*"
	default:
		return ""
	}
}

// CompareOpType describes a type of comparison operation. For example, less
// than, greater than, equal, etc.
type CompareOpType uint16

const (
	LessThan           CompareOpType = 1
	LessThanOrEqual    CompareOpType = 2
	Equal              CompareOpType = 3
	NotEqual           CompareOpType = 4
	GreaterThan        CompareOpType = 5
	GreaterThanOrEqual CompareOpType = 6
)

// CompareOps lists every comparison operation in a stable order.
var CompareOps = []CompareOpType{
	LessThan,
	LessThanOrEqual,
	Equal,
	NotEqual,
	GreaterThan,
	GreaterThanOrEqual,
}

// String returns a string representation of the comparison operation.
// For example "<" for less than.
func (cop CompareOpType) String() string {
	switch cop {
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return ""
	}
}

// Holds reports whether the comparison is satisfied by a three-way compare
// result (-1, 0 or 1).
func (cop CompareOpType) Holds(cmp int) bool {
	switch cop {
	case LessThan:
		return cmp < 0
	case LessThanOrEqual:
		return cmp <= 0
	case Equal:
		return cmp == 0
	case NotEqual:
		return cmp != 0
	case GreaterThan:
		return cmp > 0
	case GreaterThanOrEqual:
		return cmp >= 0
	default:
		return false
	}
}
