package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodProperties(t *testing.T) {
	tests := []struct {
		word       string
		method     Method
		safe       bool
		idempotent bool
	}{
		{"GET", MethodGet, true, true},
		{"HEAD", MethodHead, true, true},
		{"POST", MethodPost, false, false},
		{"PUT", MethodPut, false, true},
		{"DELETE", MethodDelete, false, true},
		{"CONNECT", MethodConnect, false, false},
		{"OPTIONS", MethodOptions, true, true},
		{"TRACE", MethodTrace, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			m, err := ParseMethod(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.method, m)
			assert.Equal(t, tt.word, m.String())
			assert.Equal(t, tt.safe, m.IsSafe())
			assert.Equal(t, tt.idempotent, m.IsIdempotent())
		})
	}
}

func TestParseMethodErrors(t *testing.T) {
	tests := []struct {
		word string
		want MethodError
	}{
		{"get", ErrNotASCIIUppercase},
		{"Get", ErrNotASCIIUppercase},
		{"GÉT", ErrNotASCIIUppercase},
		{"GET1", ErrNotASCIIUppercase},
		{"PATCH", ErrNotAMethod},
		{"GETS", ErrNotAMethod},
	}
	for _, tt := range tests {
		_, err := ParseMethod(tt.word)
		assert.ErrorIs(t, err, tt.want, tt.word)
	}
}

func TestUnknownMethodString(t *testing.T) {
	assert.Equal(t, "", Method(0).String())
	assert.False(t, Method(0).IsSafe())
	assert.False(t, Method(0).IsIdempotent())
}
