// Package version holds the HTTP protocol version carried on start lines.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const prefix = "HTTP/"

var (
	// ErrMissingPrefix means the word does not start with "HTTP/".
	ErrMissingPrefix = errors.New("version: missing HTTP/ prefix")
	// ErrMalformed means the part after the prefix is not major.minor.
	ErrMalformed = errors.New("version: expected major.minor")
)

// Version is a protocol version. Neither number has an upper bound.
type Version struct {
	Major uint64
	Minor uint64
}

var (
	HTTP10 = Version{Major: 1, Minor: 0}
	HTTP11 = Version{Major: 1, Minor: 1}
)

// Parse reads an HTTP-version word such as "HTTP/1.1".
func Parse(word string) (Version, error) {
	if !strings.HasPrefix(word, prefix) {
		return Version{}, ErrMissingPrefix
	}
	parts := strings.Split(word[len(prefix):], ".")
	if len(parts) != 2 {
		return Version{}, ErrMalformed
	}
	major, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Version{}, ErrMalformed
	}
	minor, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return Version{}, ErrMalformed
	}
	return Version{Major: major, Minor: minor}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}
