package headers

import "strings"

// Value is a validated header field value: non-empty ASCII without CR, LF
// or NUL, with surrounding whitespace removed.
type Value struct {
	text string
}

// NewValue trims raw and validates what is left.
//
// CR, LF and NUL are rejected wherever they appear in raw, including at the
// edges where trimming would otherwise hide them.
func NewValue(raw string) (Value, error) {
	trimmed := trimSpace(raw)
	if !isASCII(raw) {
		return Value{}, ErrValueNonASCII
	}
	if len(trimmed) == 0 {
		return Value{}, ErrValueEmpty
	}
	if strings.ContainsAny(raw, "\r\n\x00") {
		return Value{}, ErrValueIllegalChars
	}
	return Value{text: trimmed}, nil
}

// Append folds another occurrence of the same field into v, giving the
// comma separated list form "v,raw". v is untouched if raw is invalid.
func (v *Value) Append(raw string) error {
	cleaned, err := NewValue(raw)
	if err != nil {
		return err
	}
	v.text = v.text + "," + cleaned.text
	return nil
}

func (v Value) String() string { return v.text }

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}
