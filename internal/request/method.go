package request

// Method is one of the standardized request methods.
type Method uint8

const (
	MethodGet Method = iota + 1
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodConnect
	MethodOptions
	MethodTrace
)

var methodTable = []struct {
	method Method
	word   string
}{
	{MethodGet, "GET"},
	{MethodHead, "HEAD"},
	{MethodPost, "POST"},
	{MethodPut, "PUT"},
	{MethodDelete, "DELETE"},
	{MethodConnect, "CONNECT"},
	{MethodOptions, "OPTIONS"},
	{MethodTrace, "TRACE"},
}

// ParseMethod maps a method word to a Method. Every standardized method is
// upper case, so anything else is rejected before the lookup.
func ParseMethod(word string) (Method, error) {
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'A' || c > 'Z' {
			return 0, ErrNotASCIIUppercase
		}
	}
	for _, m := range methodTable {
		if m.word == word {
			return m.method, nil
		}
	}
	return 0, ErrNotAMethod
}

func (m Method) String() string {
	for _, e := range methodTable {
		if e.method == m {
			return e.word
		}
	}
	return ""
}

// IsSafe reports whether the method is read-only on the server.
func (m Method) IsSafe() bool {
	switch m {
	case MethodGet, MethodHead, MethodOptions, MethodTrace:
		return true
	}
	return false
}

// IsIdempotent reports whether repeating the request has the same effect
// as sending it once: every safe method, plus PUT and DELETE.
func (m Method) IsIdempotent() bool {
	return m.IsSafe() || m == MethodPut || m == MethodDelete
}
