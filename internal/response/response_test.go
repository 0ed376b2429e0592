package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2ndDerivative/HttpLibrary/internal/headers"
	"github.com/2ndDerivative/HttpLibrary/internal/version"
)

func TestResponseTitleBytes(t *testing.T) {
	assert.Equal(t, []byte("HTTP/1.0 200 OK\r\n\r\n"), New(StatusOK).Bytes())
	assert.Equal(t, "HTTP/1.0 404 NOT FOUND\r\n\r\n", New(StatusNotFound).String())
}

func TestResponseBodyBytes(t *testing.T) {
	result := New(StatusOK).Body([]byte("SomeBODY"))
	assert.Equal(t, []byte("HTTP/1.0 200 OK\r\n\r\nSomeBODY"), result.Bytes())
}

func TestResponseHeaderBytes(t *testing.T) {
	r, err := New(StatusOK).Header("hi", "its me")
	require.NoError(t, err)
	result := r.Body([]byte("someBODY"))
	assert.Equal(t, []byte("HTTP/1.0 200 OK\r\nhi:its me\r\n\r\nsomeBODY"), result.Bytes())
}

func TestResponseHostRaisesVersion(t *testing.T) {
	r, err := New(StatusOK).Header("Host", "example.com")
	require.NoError(t, err)
	assert.Equal(t, version.HTTP11, r.Version())

	r, err = r.Header("hi", "its me")
	require.NoError(t, err)
	result := r.Body([]byte("someBODY"))

	assert.Equal(t, version.HTTP11, result.Version())
	assert.Equal(t,
		"HTTP/1.1 200 OK\r\nhost:example.com\r\nhi:its me\r\n\r\nsomeBODY",
		result.String())
}

func TestResponseWithoutHostIsHTTP10(t *testing.T) {
	r, err := New(StatusOK).Header("hi", "its me")
	require.NoError(t, err)
	assert.Equal(t, version.HTTP10, r.Version())
	assert.Equal(t, version.HTTP10, New(StatusOK).Version())
	assert.Equal(t, version.HTTP10, New(StatusOK).Body(nil).Version())
}

// Header fields with different keys may appear in any order.
func TestResponseMultipleHeaders(t *testing.T) {
	r, err := New(StatusOK).Header("hey", "man")
	require.NoError(t, err)
	r, err = r.Header("how", "are you")
	require.NoError(t, err)
	got := string(r.Body([]byte("someBODY")).Bytes())

	assert.Contains(t, []string{
		"HTTP/1.0 200 OK\r\nhey:man\r\nhow:are you\r\n\r\nsomeBODY",
		"HTTP/1.0 200 OK\r\nhow:are you\r\nhey:man\r\n\r\nsomeBODY",
	}, got)
}

func TestResponseRepeatedHeadersMerge(t *testing.T) {
	r, err := New(StatusOK).Header("stuff", "Aaron")
	require.NoError(t, err)
	r, err = r.Header("STUFF", "Berta")
	require.NoError(t, err)
	r, err = r.Header("sTuFf", "Charlie   ")
	require.NoError(t, err)
	r, err = r.Header("other_stuff", "Daniel")
	require.NoError(t, err)

	v, ok := r.Get("stuff")
	assert.True(t, ok)
	assert.Equal(t, "Aaron,Berta,Charlie", v)
	v, ok = r.Get("OTHER_STUFF")
	assert.True(t, ok)
	assert.Equal(t, "Daniel", v)
}

func TestResponseHeadersTrimWhitespace(t *testing.T) {
	plain, err := New(StatusOK).Header("some_header", "no_whitespace")
	require.NoError(t, err)
	leading, err := New(StatusOK).Header("some_header", "   no_whitespace")
	require.NoError(t, err)
	trailing, err := New(StatusOK).Header("some_header", "no_whitespace          ")
	require.NoError(t, err)

	assert.Equal(t, plain.Bytes(), leading.Bytes())
	assert.Equal(t, plain.Bytes(), trailing.Bytes())
}

func TestResponseHeaderCantInsertEmpty(t *testing.T) {
	r, err := New(StatusOK).Header("stuff", "")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, headers.ErrValueEmpty)

	r, err = New(StatusOK).Header("", "stuff")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, headers.ErrKeyEmpty)
}

func TestResponseFailedHeaderKeepsPrevious(t *testing.T) {
	r, err := New(StatusOK).Header("a", "1")
	require.NoError(t, err)

	next, err := r.Header("b ", "2")
	assert.Nil(t, next)
	assert.ErrorIs(t, err, headers.ErrKeyColonWhitespace)

	next, err = r.Header("a", "bad\r\nsmuggled: yes")
	assert.Nil(t, next)
	assert.ErrorIs(t, err, headers.ErrValueIllegalChars)

	assert.Equal(t, "HTTP/1.0 200 OK\r\na:1\r\n\r\n", r.String())
}

func TestResponseTransitionConsumesBuilder(t *testing.T) {
	first, err := New(StatusOK).Header("a", "1")
	require.NoError(t, err)
	second, err := first.Header("b", "2")
	require.NoError(t, err)

	_, ok := first.Get("a")
	assert.False(t, ok)
	assert.Equal(t, "HTTP/1.0 200 OK\r\n\r\n", first.String())

	done := second.Body([]byte("x"))
	_, ok = second.Get("b")
	assert.False(t, ok)

	v, ok := done.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, []byte("x"), done.Content())
	assert.Equal(t, StatusOK, done.Status())
}

func TestResponseNonUTF8BodyDisplay(t *testing.T) {
	body := []byte{0xff, 0xfe, 0x41}
	c := New(StatusOK).Body(body)
	assert.Equal(t, "HTTP/1.0 200 OK\r\n\r\n[255 254 65]", c.String())
	assert.Equal(t, append([]byte("HTTP/1.0 200 OK\r\n\r\n"), body...), c.Bytes())
}

func TestStagesAreByteable(t *testing.T) {
	w, err := New(StatusNotImplemented).Header("host", "h")
	require.NoError(t, err)
	stages := []Byteable{
		New(StatusNotImplemented),
		w,
		New(StatusNotImplemented).Body(nil),
	}
	want := []string{
		"HTTP/1.0 501 NOT IMPLEMENTED\r\n\r\n",
		"HTTP/1.1 501 NOT IMPLEMENTED\r\nhost:h\r\n\r\n",
		"HTTP/1.0 501 NOT IMPLEMENTED\r\n\r\n",
	}
	for i, s := range stages {
		assert.Equal(t, want[i], string(s.Bytes()))
	}
}

func TestResponseBodyIsCopied(t *testing.T) {
	body := []byte("abc")
	c := New(StatusOK).Body(body)
	body[0] = 'X'
	assert.Equal(t, "HTTP/1.0 200 OK\r\n\r\nabc", c.String())

	w, err := New(StatusOK).Header("a", "1")
	require.NoError(t, err)
	body = []byte("abc")
	c = w.Body(body)
	body[0] = 'X'
	assert.Equal(t, []byte("abc"), c.Content())
	assert.Equal(t, "HTTP/1.0 200 OK\r\na:1\r\n\r\nabc", c.String())
}

func TestResponseReusedBuilderStartsEmpty(t *testing.T) {
	w, err := New(StatusOK).Header("a", "1")
	require.NoError(t, err)
	_, err = w.Header("b", "2")
	require.NoError(t, err)

	again, err := w.Header("c", "3")
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.0 200 OK\r\nc:3\r\n\r\n", again.String())
}
