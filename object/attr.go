package object

// AttrSpec describes an attribute available on an object.
// This provides metadata for introspection, documentation, and tooling.
type AttrSpec struct {
	// Name is the attribute name (e.g., "find", "isalpha").
	Name string `json:"name"`

	// Doc is a short description of what the attribute does.
	Doc string `json:"doc"`

	// Args lists parameter names (e.g., ["sub", "start?", "end?"]).
	// Empty for attributes that take no arguments.
	Args []string `json:"args,omitempty"`

	// Returns describes the return type (e.g., "int", "bool").
	Returns string `json:"returns"`
}

// AttrNames returns just the attribute names from a slice of AttrSpec.
func AttrNames(attrs []AttrSpec) []string {
	names := make([]string, len(attrs))
	for i, attr := range attrs {
		names[i] = attr.Name
	}
	return names
}

// FindAttr searches for an attribute by name in a slice of AttrSpec.
// Returns the AttrSpec and true if found, or zero value and false if not.
func FindAttr(attrs []AttrSpec, name string) (AttrSpec, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return AttrSpec{}, false
}
