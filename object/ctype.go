package object

// Byte classes follow the 7-bit ASCII "C" locale. Bytes 0x80 through 0xFF
// belong to no class: they are not letters, digits, whitespace or printable,
// whatever encoding the content happens to use.
const (
	cUpper uint8 = 1 << iota
	cLower
	cDigit
	cSpace
	cPrint

	cAlpha = cUpper | cLower
	cAlnum = cAlpha | cDigit
)

var ctypeTable = func() (t [256]uint8) {
	for c := 'A'; c <= 'Z'; c++ {
		t[c] |= cUpper
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] |= cLower
	}
	for c := '0'; c <= '9'; c++ {
		t[c] |= cDigit
	}
	for _, c := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		t[c] |= cSpace
	}
	for c := 0x20; c <= 0x7e; c++ {
		t[c] |= cPrint
	}
	return t
}()

// IsAlnumByte reports whether c is an ASCII letter or digit.
func IsAlnumByte(c byte) bool { return ctypeTable[c]&cAlnum != 0 }

// IsAlphaByte reports whether c is an ASCII letter.
func IsAlphaByte(c byte) bool { return ctypeTable[c]&cAlpha != 0 }

// IsDigitByte reports whether c is an ASCII decimal digit.
func IsDigitByte(c byte) bool { return ctypeTable[c]&cDigit != 0 }

// IsSpaceByte reports whether c is one of " \t\n\v\f\r".
func IsSpaceByte(c byte) bool { return ctypeTable[c]&cSpace != 0 }

// IsPrintableByte reports whether c is in the range 0x20-0x7E.
func IsPrintableByte(c byte) bool { return ctypeTable[c]&cPrint != 0 }

// IsLowerByte reports whether c is an ASCII lowercase letter.
func IsLowerByte(c byte) bool { return ctypeTable[c]&cLower != 0 }

// IsUpperByte reports whether c is an ASCII uppercase letter.
func IsUpperByte(c byte) bool { return ctypeTable[c]&cUpper != 0 }

// allIn reports whether s is non-empty and every byte has one of the classes
// in mask.
func allIn(s string, mask uint8) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if ctypeTable[s[i]]&mask == 0 {
			return false
		}
	}
	return true
}

// cased reports whether s holds at least one letter of class want and no
// letter of class other.
func cased(s string, want, other uint8) bool {
	found := false
	for i := 0; i < len(s); i++ {
		c := ctypeTable[s[i]]
		if c&other != 0 {
			return false
		}
		if c&want != 0 {
			found = true
		}
	}
	return found
}

// IsAlnum reports whether s is non-empty and every byte is a letter or digit.
func (s *String) IsAlnum() bool {
	return allIn(s.Value(), cAlnum)
}

// IsAlpha reports whether s is non-empty and every byte is a letter.
func (s *String) IsAlpha() bool {
	return allIn(s.Value(), cAlpha)
}

// IsDigit reports whether s is non-empty and every byte is a digit.
func (s *String) IsDigit() bool {
	return allIn(s.Value(), cDigit)
}

// IsSpace reports whether s is non-empty and every byte is whitespace.
func (s *String) IsSpace() bool {
	return allIn(s.Value(), cSpace)
}

// IsPrintable reports whether s is non-empty and every byte is printable.
func (s *String) IsPrintable() bool {
	return allIn(s.Value(), cPrint)
}

// IsLower reports whether s has at least one letter and all its letters are
// lowercase. Non-letters are ignored.
func (s *String) IsLower() bool {
	return cased(s.Value(), cLower, cUpper)
}

// IsUpper reports whether s has at least one letter and all its letters are
// uppercase. Non-letters are ignored.
func (s *String) IsUpper() bool {
	return cased(s.Value(), cUpper, cLower)
}
