package response

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/2ndDerivative/HttpLibrary/internal/headers"
	"github.com/2ndDerivative/HttpLibrary/internal/version"
)

// A response is assembled in stages, each its own type: New returns a
// *Response, Header moves to *WithHeaders, Body moves to *Complete. Every
// stage can be serialized. Complete has no way to add headers or replace
// the body.

// Byteable is implemented by every builder stage.
type Byteable interface {
	Bytes() []byte
}

// Response is the initial stage: a status code and nothing else.
type Response struct {
	status StatusCode
}

// New starts a response with the given status.
func New(status StatusCode) *Response {
	return &Response{status: status}
}

// Header validates the pair and moves to the header stage.
func (r *Response) Header(key, value string) (*WithHeaders, error) {
	h := headers.NewHeaders()
	if err := h.Insert(key, value); err != nil {
		return nil, err
	}
	return &WithHeaders{status: r.status, headers: h}, nil
}

// Body finishes the response without any headers. body is copied, so
// later changes to it do not reach the response.
func (r *Response) Body(body []byte) *Complete {
	return &Complete{status: r.status, headers: headers.NewHeaders(), body: bytes.Clone(body)}
}

func (r *Response) Bytes() []byte            { return serialize(r.status, nil, nil) }
func (r *Response) String() string           { return render(r.status, nil, nil) }
func (r *Response) Status() StatusCode       { return r.status }
func (r *Response) Version() version.Version { return version.HTTP10 }

// WithHeaders holds a status and at least one header.
type WithHeaders struct {
	status  StatusCode
	headers *headers.Headers
}

// Header adds another field. A key that is already present has the new
// value appended to it. On error the receiver is unchanged and nil is
// returned.
//
// On success the receiver is consumed: its headers move to the returned
// value and it is left with none. Further calls on it start again from an
// empty header set, so always continue from the returned value.
func (w *WithHeaders) Header(key, value string) (*WithHeaders, error) {
	if err := w.headers.Insert(key, value); err != nil {
		return nil, err
	}
	next := &WithHeaders{status: w.status, headers: w.headers}
	w.headers = headers.NewHeaders()
	return next, nil
}

// Body finishes the response. body is copied and the receiver's headers
// move to the result.
//
// The receiver is consumed: using it afterwards starts again from an empty
// header set. Keep only the returned value.
func (w *WithHeaders) Body(body []byte) *Complete {
	c := &Complete{status: w.status, headers: w.headers, body: bytes.Clone(body)}
	w.headers = headers.NewHeaders()
	return c
}

func (w *WithHeaders) Bytes() []byte            { return serialize(w.status, w.headers, nil) }
func (w *WithHeaders) String() string           { return render(w.status, w.headers, nil) }
func (w *WithHeaders) Status() StatusCode       { return w.status }
func (w *WithHeaders) Version() version.Version { return protocolVersion(w.headers) }

// Get returns the value of a field set so far.
func (w *WithHeaders) Get(name string) (string, bool) {
	v, ok := w.headers.Get(name)
	return v.String(), ok
}

// Complete is a finished response. It can only be read and serialized.
type Complete struct {
	status  StatusCode
	headers *headers.Headers
	body    []byte
}

func (c *Complete) Bytes() []byte            { return serialize(c.status, c.headers, c.body) }
func (c *Complete) String() string           { return render(c.status, c.headers, c.body) }
func (c *Complete) Status() StatusCode       { return c.status }
func (c *Complete) Version() version.Version { return protocolVersion(c.headers) }

// Get returns the value of a field set on the response.
func (c *Complete) Get(name string) (string, bool) {
	v, ok := c.headers.Get(name)
	return v.String(), ok
}

// Content returns a copy of the body bytes.
func (c *Complete) Content() []byte {
	return bytes.Clone(c.body)
}

// protocolVersion advertises 1.1 only when the message carries a host
// field, which HTTP/1.1 requires.
func protocolVersion(h *headers.Headers) version.Version {
	if h.Has("host") {
		return version.HTTP11
	}
	return version.HTTP10
}

func head(status StatusCode, h *headers.Headers) []byte {
	v := protocolVersion(h)
	var buf bytes.Buffer
	buf.WriteString(v.String())
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(int(status)))
	buf.WriteByte(' ')
	buf.WriteString(status.ReasonPhrase())
	h.Range(func(k headers.Key, val headers.Value) bool {
		buf.WriteString("\r\n")
		buf.WriteString(k.String())
		buf.WriteByte(':')
		buf.WriteString(val.String())
		return true
	})
	buf.WriteString("\r\n\r\n")
	return buf.Bytes()
}

func serialize(status StatusCode, h *headers.Headers, body []byte) []byte {
	return append(head(status, h), body...)
}

// render is serialize for display. A body that is not valid UTF-8 is shown
// as its byte values instead.
func render(status StatusCode, h *headers.Headers, body []byte) string {
	if utf8.Valid(body) {
		return string(serialize(status, h, body))
	}
	return string(head(status, h)) + fmt.Sprintf("%v", body)
}
