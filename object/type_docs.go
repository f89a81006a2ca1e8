package object

import (
	"sort"
)

// TypeSpec documents a type and the attributes it exposes.
type TypeSpec struct {
	Name  string     `json:"name"`
	Doc   string     `json:"doc"`
	Attrs []AttrSpec `json:"attrs,omitempty"`
}

type typeDocEntry struct {
	description string
	attrsFn     func() []AttrSpec
}

var typeDocs = map[Type]typeDocEntry{}

// RegisterType records documentation for t. attrsFn may be nil for types
// without attributes.
func RegisterType(t Type, description string, attrsFn func() []AttrSpec) {
	typeDocs[t] = typeDocEntry{description: description, attrsFn: attrsFn}
}

func init() {
	RegisterType(STRING, "Immutable byte string with a trailing NUL terminator", func() []AttrSpec {
		return NewString("").Attrs()
	})
	RegisterType(BYTES, "Mutable host byte buffer", nil)
	RegisterType(INT, "64-bit signed integer", nil)
	RegisterType(BOOL, "Boolean value (true or false)", nil)
	RegisterType(NIL, "Absence of a value", nil)
	RegisterType(SLICE, "Start, stop and step of a subscript", nil)
	RegisterType(BUILTIN, "Method bound to a receiver", nil)
}

// TypeDoc returns documentation for a specific type.
func TypeDoc(t Type) (TypeSpec, bool) {
	entry, ok := typeDocs[t]
	if !ok {
		return TypeSpec{}, false
	}
	return entry.spec(t), true
}

// TypeDocs returns documentation for all registered types, sorted by name.
func TypeDocs() []TypeSpec {
	specs := make([]TypeSpec, 0, len(typeDocs))
	for t, entry := range typeDocs {
		specs = append(specs, entry.spec(t))
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}

func (e typeDocEntry) spec(t Type) TypeSpec {
	var attrs []AttrSpec
	if e.attrsFn != nil {
		attrs = e.attrsFn()
	}
	return TypeSpec{Name: string(t), Doc: e.description, Attrs: attrs}
}
