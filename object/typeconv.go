package object

// *****************************************************************************
// Type assertion helpers
// *****************************************************************************

// AsView returns the raw bytes of any byte-bearing value: a String, a Bytes
// buffer, any Viewer, a Go string or a []byte.
func AsView(obj any) (string, error) {
	switch obj := obj.(type) {
	case *String:
		return obj.Value(), nil
	case *Bytes:
		return string(obj.value), nil
	case Viewer:
		return obj.View(), nil
	case string:
		return obj, nil
	case []byte:
		return string(obj), nil
	default:
		return "", newTypeErrorf("object cannot be type %s", typeName(obj))
	}
}

func AsString(obj Object) (*String, error) {
	s, ok := obj.(*String)
	if !ok {
		return nil, newTypeErrorf("expected a string (%s given)", typeName(obj))
	}
	return s, nil
}

func AsInt(obj Object) (int64, error) {
	i, ok := obj.(*Int)
	if !ok {
		return 0, newTypeErrorf("expected an integer (%s given)", typeName(obj))
	}
	return i.value, nil
}

// FromGoType converts a Go value to the corresponding object, or returns nil
// if the type is not supported.
func FromGoType(v any) Object {
	switch v := v.(type) {
	case nil:
		return Nil
	case Object:
		return v
	case string:
		return NewString(v)
	case []byte:
		return NewBytes(v)
	case int:
		return NewInt(int64(v))
	case int64:
		return NewInt(v)
	case bool:
		return NewBool(v)
	default:
		return nil
	}
}
