package object

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// charmaps lists the single-byte encodings understood by Decode and Encode.
var charmaps = map[string]*charmap.Charmap{
	"latin-1":      charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

func normalizeEncoding(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// Decode interprets the content as text in the named encoding and returns it
// as UTF-8. Supported encodings are "utf-8", "ascii", "latin-1" and
// "windows-1252".
func (s *String) Decode(encoding string) (string, error) {
	value := s.Value()
	name := normalizeEncoding(encoding)
	switch name {
	case "utf-8", "utf8":
		if !utf8.ValidString(value) {
			return "", newValueErrorf("invalid utf-8 sequence at byte %d", invalidUTF8At(value))
		}
		return value, nil
	case "ascii", "us-ascii":
		for i := 0; i < len(value); i++ {
			if value[i] >= utf8.RuneSelf {
				return "", newValueErrorf("byte 0x%02x at position %d is not ascii", value[i], i)
			}
		}
		return value, nil
	}
	cm, ok := charmaps[name]
	if !ok {
		return "", newValueErrorf("unknown encoding: %s", encoding)
	}
	text, err := cm.NewDecoder().String(value)
	if err != nil {
		return "", newValueErrorf("unable to decode as %s: %v", encoding, err)
	}
	return text, nil
}

// Encode converts UTF-8 text into a String holding its bytes in the named
// encoding. Text that cannot be represented fails with a value error.
func Encode(text, encoding string) (*String, error) {
	name := normalizeEncoding(encoding)
	switch name {
	case "utf-8", "utf8":
		if !utf8.ValidString(text) {
			return nil, newValueErrorf("invalid utf-8 sequence at byte %d", invalidUTF8At(text))
		}
		return NewString(text), nil
	case "ascii", "us-ascii":
		for i := 0; i < len(text); i++ {
			if text[i] >= utf8.RuneSelf {
				return nil, newValueErrorf("byte 0x%02x at position %d is not ascii", text[i], i)
			}
		}
		return NewString(text), nil
	}
	cm, ok := charmaps[name]
	if !ok {
		return nil, newValueErrorf("unknown encoding: %s", encoding)
	}
	encoded, err := cm.NewEncoder().String(text)
	if err != nil {
		return nil, newValueErrorf("unable to encode as %s: %v", encoding, err)
	}
	return NewString(encoded), nil
}

func invalidUTF8At(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
