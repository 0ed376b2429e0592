package headers

import (
	"fmt"

	"github.com/pkg/errors"
)

// KeyError reports why a header key was rejected.
type KeyError uint8

const (
	ErrKeyNonASCII KeyError = iota + 1
	ErrKeyEmpty
	ErrKeyLeadingWhitespace
	// ErrKeyColonWhitespace is whitespace between the field name and the
	// colon. Servers must reject it (RFC 9112 section 5.1).
	ErrKeyColonWhitespace
)

func (e KeyError) Error() string {
	switch e {
	case ErrKeyNonASCII:
		return "header key: non-ascii characters"
	case ErrKeyEmpty:
		return "header key: empty string"
	case ErrKeyLeadingWhitespace:
		return "header key: leading whitespace"
	case ErrKeyColonWhitespace:
		return "header key: whitespace before colon"
	default:
		return fmt.Sprintf("header key: error %d", uint8(e))
	}
}

// ValueError reports why a header value was rejected.
type ValueError uint8

const (
	ErrValueNonASCII ValueError = iota + 1
	ErrValueEmpty
	ErrValueIllegalChars
)

func (e ValueError) Error() string {
	switch e {
	case ErrValueNonASCII:
		return "header value: non-ascii characters"
	case ErrValueEmpty:
		return "header value: empty string"
	case ErrValueIllegalChars:
		return "header value: contains CR, LF or NUL"
	default:
		return fmt.Sprintf("header value: error %d", uint8(e))
	}
}

// ErrNoSeparator is returned for a header line without a colon.
var ErrNoSeparator = errors.New("header: missing colon separator")

// HeaderError is a failed header. Err is a KeyError, a ValueError or
// ErrNoSeparator.
type HeaderError struct {
	Err error
}

func (e *HeaderError) Error() string {
	return "invalid header: " + e.Err.Error()
}

func (e *HeaderError) Unwrap() error { return e.Err }

// KeyError returns the key error behind e, if that is what failed.
func (e *HeaderError) KeyError() (KeyError, bool) {
	var ke KeyError
	ok := errors.As(e.Err, &ke)
	return ke, ok
}

// ValueError returns the value error behind e, if that is what failed.
func (e *HeaderError) ValueError() (ValueError, bool) {
	var ve ValueError
	ok := errors.As(e.Err, &ve)
	return ve, ok
}
