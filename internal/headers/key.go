package headers

// Key is a validated header field name. It only ever holds the ASCII
// lowercase form, so comparing two keys with == is case-insensitive and a
// Key can be used directly as a map key.
type Key struct {
	name string
}

// NewKey validates raw as a field name. Checks run in a fixed order so that
// the reported error is stable when several apply: non-ASCII, empty,
// leading whitespace, trailing whitespace.
func NewKey(raw string) (Key, error) {
	if !isASCII(raw) {
		return Key{}, ErrKeyNonASCII
	}
	if len(raw) == 0 {
		return Key{}, ErrKeyEmpty
	}
	if isSpace(raw[0]) {
		return Key{}, ErrKeyLeadingWhitespace
	}
	if isSpace(raw[len(raw)-1]) {
		return Key{}, ErrKeyColonWhitespace
	}
	return Key{name: toLower(raw)}, nil
}

// String returns the canonical lowercase name.
func (k Key) String() string { return k.name }

// Equal reports whether s names the same field, ignoring case.
func (k Key) Equal(s string) bool {
	return len(s) == len(k.name) && toLower(s) == k.name
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// toLower folds ASCII letters only; anything else is left alone.
func toLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
