package request

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/2ndDerivative/HttpLibrary/internal/headers"
	"github.com/2ndDerivative/HttpLibrary/internal/response"
)

// MethodError reports why a method word was rejected.
type MethodError uint8

const (
	ErrNotASCIIUppercase MethodError = iota + 1
	ErrNotAMethod
)

func (e MethodError) Error() string {
	switch e {
	case ErrNotASCIIUppercase:
		return "not ascii uppercase"
	case ErrNotAMethod:
		return "not a method word"
	default:
		return fmt.Sprintf("method error %d", uint8(e))
	}
}

// ParseErrorKind classifies a failed parse. Each kind is also an error, so
// errors.Is(err, ErrInvalidVersion) works on anything Parse returns.
type ParseErrorKind uint8

const (
	// ErrEmptyRequest: nothing but at most one empty line.
	ErrEmptyRequest ParseErrorKind = iota + 1
	// ErrMissingStartlineElements: fewer than method, target and version.
	ErrMissingStartlineElements
	// ErrInvalidHttpWord: the version word does not start with "HTTP/".
	ErrInvalidHttpWord
	// ErrMethodNotRecognized: a server should answer 501.
	ErrMethodNotRecognized
	ErrBadHeader
	// ErrInvalidVersion: not HTTP/major.minor with two decimal numbers.
	ErrInvalidVersion
)

func (k ParseErrorKind) Error() string {
	switch k {
	case ErrEmptyRequest:
		return "empty request"
	case ErrMissingStartlineElements:
		return "request is missing any of method request-target HTTP-version"
	case ErrInvalidHttpWord:
		return "start line does not end with a HTTP/.. version string"
	case ErrMethodNotRecognized:
		return "method not recognized"
	case ErrBadHeader:
		return "header invalid"
	case ErrInvalidVersion:
		return "version invalid"
	default:
		return fmt.Sprintf("parse error %d", uint8(k))
	}
}

// ParseError is returned by Parse. Err holds the MethodError or
// *headers.HeaderError behind ErrMethodNotRecognized and ErrBadHeader.
type ParseError struct {
	Kind ParseErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Err.Error()
	}
	return e.Kind.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	k, ok := target.(ParseErrorKind)
	return ok && k == e.Kind
}

// AppropriateResponse picks the status a server is required to send for a
// parse failure. It reports false when the protocol leaves the choice to
// the caller.
func AppropriateResponse(err error) (response.StatusCode, bool) {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return 0, false
	}
	switch {
	case pe.Kind == ErrMethodNotRecognized:
		return response.StatusNotImplemented, true
	case pe.Kind == ErrBadHeader && errors.Is(pe.Err, headers.ErrKeyColonWhitespace):
		return response.StatusBadRequest, true
	}
	return 0, false
}
