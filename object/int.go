package object

import (
	"fmt"
)

// Int wraps int64 and implements Object.
// Int is immutable: the value is set at construction and cannot be changed.
type Int struct {
	value int64
}

func (i *Int) Inspect() string {
	return fmt.Sprintf("%d", i.value)
}

func (i *Int) Type() Type {
	return INT
}

func (i *Int) Value() int64 {
	return i.value
}

func (i *Int) Interface() interface{} {
	return i.value
}

func (i *Int) String() string {
	return i.Inspect()
}

func (i *Int) Equals(other Object) bool {
	otherInt, ok := other.(*Int)
	if !ok {
		return false
	}
	return i.value == otherInt.value
}

func NewInt(value int64) *Int {
	return &Int{value: value}
}
