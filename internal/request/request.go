package request

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/2ndDerivative/HttpLibrary/internal/headers"
	"github.com/2ndDerivative/HttpLibrary/internal/version"
)

type Request struct {
	RequestLine RequestLine
	Headers     *headers.Headers
	// Body is whatever followed the empty line, untouched.
	Body []byte
}

type RequestLine struct {
	Method        Method
	RequestTarget string
	HttpVersion   version.Version
}

// Header returns the value of a request field, matched case-insensitively.
func (r *Request) Header(name string) (string, bool) {
	v, ok := r.Headers.Get(name)
	return v.String(), ok
}

// RequestFromReader reads reader to EOF and parses the result. The reader
// is expected to yield exactly one complete request.
func RequestFromReader(reader io.Reader) (*Request, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read request")
	}
	return Parse(string(data))
}

// Parse builds a Request from a complete request text. Lines may end in
// CRLF or LF. The first error found stops the parse; no partial Request
// is returned.
func Parse(text string) (*Request, error) {
	line, rest, ok := nextLine(text)
	if !ok {
		return nil, &ParseError{Kind: ErrEmptyRequest}
	}
	// A single leading empty line is allowed (RFC 9112 section 2.2).
	if line == "" {
		if line, rest, ok = nextLine(rest); !ok {
			return nil, &ParseError{Kind: ErrEmptyRequest}
		}
	}

	rl, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	h := headers.NewHeaders()
	for {
		line, rest, ok = nextLine(rest)
		if !ok || line == "" {
			break
		}
		if err := h.ParseLine(line); err != nil {
			return nil, &ParseError{Kind: ErrBadHeader, Err: err}
		}
	}

	return &Request{
		RequestLine: rl,
		Headers:     h,
		Body:        []byte(rest),
	}, nil
}

// parseRequestLine splits the start line on whitespace and reads the first
// three words. Anything after the version word is ignored.
func parseRequestLine(line string) (RequestLine, error) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return RequestLine{}, &ParseError{Kind: ErrMissingStartlineElements}
	}

	method, err := ParseMethod(parts[0])
	if err != nil {
		return RequestLine{}, &ParseError{Kind: ErrMethodNotRecognized, Err: err}
	}

	v, err := version.Parse(parts[2])
	if errors.Is(err, version.ErrMissingPrefix) {
		return RequestLine{}, &ParseError{Kind: ErrInvalidHttpWord}
	}
	if err != nil {
		return RequestLine{}, &ParseError{Kind: ErrInvalidVersion}
	}

	return RequestLine{
		Method:        method,
		RequestTarget: parts[1],
		HttpVersion:   v,
	}, nil
}

// nextLine cuts the first line off s. The line excludes its LF and one
// preceding CR. ok is false once s is empty.
func nextLine(s string) (line, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	line, rest, _ = strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r"), rest, true
}
