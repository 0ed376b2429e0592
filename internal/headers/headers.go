package headers

import (
	"strings"
)

// Headers maps field names to values. Repeated fields are merged into one
// comma separated value on insert, so a key is never present twice.
type Headers struct {
	values map[Key]*Value
	order  []Key
}

// NewHeaders creates an empty Headers map.
func NewHeaders() *Headers {
	return &Headers{values: make(map[Key]*Value)}
}

// Insert validates the pair and stores it. If the key is already present
// the value is appended to the existing one. On error nothing changes.
func (h *Headers) Insert(rawKey, rawValue string) error {
	key, err := NewKey(rawKey)
	if err != nil {
		return &HeaderError{Err: err}
	}
	if existing, ok := h.values[key]; ok {
		if err := existing.Append(rawValue); err != nil {
			return &HeaderError{Err: err}
		}
		return nil
	}
	value, err := NewValue(rawValue)
	if err != nil {
		return &HeaderError{Err: err}
	}
	if h.values == nil {
		h.values = make(map[Key]*Value)
	}
	h.values[key] = &value
	h.order = append(h.order, key)
	return nil
}

// ParseLine consumes a single "key: value" line, without its line ending.
// The line is split on the first colon; values may contain more colons.
// No whitespace is allowed between the key and the colon.
func (h *Headers) ParseLine(line string) error {
	rawKey, rawValue, found := strings.Cut(line, ":")
	if !found {
		return &HeaderError{Err: ErrNoSeparator}
	}
	return h.Insert(rawKey, rawValue)
}

// Get returns the value stored under name, compared case-insensitively.
func (h *Headers) Get(name string) (Value, bool) {
	if h == nil {
		return Value{}, false
	}
	v, ok := h.values[Key{name: toLower(name)}]
	if !ok {
		return Value{}, false
	}
	return *v, true
}

// Value is Get without the presence flag; a missing field yields "".
func (h *Headers) Value(name string) string {
	v, _ := h.Get(name)
	return v.String()
}

// Has reports whether name is present.
func (h *Headers) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.values)
}

// Keys returns the keys in the order they were first inserted. Callers
// must not rely on that order for anything but display.
func (h *Headers) Keys() []Key {
	if h == nil {
		return nil
	}
	keys := make([]Key, len(h.order))
	copy(keys, h.order)
	return keys
}

// Range calls fn for each field until fn returns false.
func (h *Headers) Range(fn func(Key, Value) bool) {
	if h == nil {
		return
	}
	for _, k := range h.order {
		if !fn(k, *h.values[k]) {
			return
		}
	}
}
