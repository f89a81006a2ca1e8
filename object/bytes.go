package object

import (
	"bytes"
	"fmt"
)

// Bytes is a host byte buffer. Unlike String it may be mutated by its owner,
// so a String built from it always copies the content.
type Bytes struct {
	value []byte
}

func (b *Bytes) Inspect() string {
	return fmt.Sprintf("bytes(%q)", b.value)
}

func (b *Bytes) Type() Type {
	return BYTES
}

func (b *Bytes) Value() []byte {
	return b.value
}

func (b *Bytes) Interface() interface{} {
	return b.value
}

func (b *Bytes) String() string {
	return string(b.value)
}

// View returns the current content of the buffer as a string.
func (b *Bytes) View() string {
	return string(b.value)
}

func (b *Bytes) Equals(other Object) bool {
	otherBytes, ok := other.(*Bytes)
	if !ok {
		return false
	}
	return bytes.Equal(b.value, otherBytes.value)
}

func NewBytes(value []byte) *Bytes {
	return &Bytes{value: value}
}
