package response

import (
	"fmt"
	"strconv"
)

// StatusCode is one of the standard response codes listed below. Values
// outside the table are never produced by NewStatusCode.
type StatusCode uint16

const (
	StatusContinue           StatusCode = 100
	StatusSwitchingProtocols StatusCode = 101
	StatusProcessing         StatusCode = 102
	StatusEarlyHints         StatusCode = 103

	StatusOK                   StatusCode = 200
	StatusCreated              StatusCode = 201
	StatusAccepted             StatusCode = 202
	StatusNonAuthoritativeInfo StatusCode = 203
	StatusNoContent            StatusCode = 204
	StatusResetContent         StatusCode = 205
	StatusPartialContent       StatusCode = 206
	StatusMultiStatus          StatusCode = 207
	StatusAlreadyReported      StatusCode = 208
	StatusIMUsed               StatusCode = 226

	StatusMultipleChoices   StatusCode = 300
	StatusMovedPermanently  StatusCode = 301
	StatusFound             StatusCode = 302
	StatusSeeOther          StatusCode = 303
	StatusNotModified       StatusCode = 304
	StatusUseProxy          StatusCode = 305
	StatusTemporaryRedirect StatusCode = 307
	StatusPermanentRedirect StatusCode = 308

	StatusBadRequest                  StatusCode = 400
	StatusUnauthorized                StatusCode = 401
	StatusPaymentRequired             StatusCode = 402
	StatusForbidden                   StatusCode = 403
	StatusNotFound                    StatusCode = 404
	StatusMethodNotAllowed            StatusCode = 405
	StatusNotAcceptable               StatusCode = 406
	StatusProxyAuthRequired           StatusCode = 407
	StatusRequestTimeout              StatusCode = 408
	StatusConflict                    StatusCode = 409
	StatusGone                        StatusCode = 410
	StatusLengthRequired              StatusCode = 411
	StatusPreconditionFailed          StatusCode = 412
	StatusPayloadTooLarge             StatusCode = 413
	StatusURITooLong                  StatusCode = 414
	StatusUnsupportedMediaType        StatusCode = 415
	StatusRangeNotSatisfiable         StatusCode = 416
	StatusExpectationFailed           StatusCode = 417
	StatusTeapot                      StatusCode = 418
	StatusMisdirectedRequest          StatusCode = 421
	StatusUnprocessableEntity         StatusCode = 422
	StatusLocked                      StatusCode = 423
	StatusFailedDependency            StatusCode = 424
	StatusTooEarly                    StatusCode = 425
	StatusUpgradeRequired             StatusCode = 426
	StatusPreconditionRequired        StatusCode = 428
	StatusTooManyRequests             StatusCode = 429
	StatusRequestHeaderFieldsTooLarge StatusCode = 431
	StatusUnavailableForLegalReasons  StatusCode = 451

	StatusInternalServerError           StatusCode = 500
	StatusNotImplemented                StatusCode = 501
	StatusBadGateway                    StatusCode = 502
	StatusServiceUnavailable            StatusCode = 503
	StatusGatewayTimeout                StatusCode = 504
	StatusHTTPVersionNotSupported       StatusCode = 505
	StatusVariantAlsoNegotiates         StatusCode = 506
	StatusInsufficientStorage           StatusCode = 507
	StatusLoopDetected                  StatusCode = 508
	StatusNotExtended                   StatusCode = 510
	StatusNetworkAuthenticationRequired StatusCode = 511
)

// statusTable is the single source for both directions of the mapping.
var statusTable = []struct {
	code   StatusCode
	reason string
}{
	{StatusContinue, "CONTINUE"},
	{StatusSwitchingProtocols, "SWITCHING PROTOCOLS"},
	{StatusProcessing, "PROCESSING"},
	{StatusEarlyHints, "EARLY HINTS"},

	{StatusOK, "OK"},
	{StatusCreated, "CREATED"},
	{StatusAccepted, "ACCEPTED"},
	{StatusNonAuthoritativeInfo, "NON-AUTHORITATIVE INFORMATION"},
	{StatusNoContent, "NO CONTENT"},
	{StatusResetContent, "RESET CONTENT"},
	{StatusPartialContent, "PARTIAL CONTENT"},
	{StatusMultiStatus, "MULTI-STATUS"},
	{StatusAlreadyReported, "ALREADY REPORTED"},
	{StatusIMUsed, "IM USED"},

	{StatusMultipleChoices, "MULTIPLE CHOICES"},
	{StatusMovedPermanently, "MOVED PERMANENTLY"},
	{StatusFound, "FOUND"},
	{StatusSeeOther, "SEE OTHER"},
	{StatusNotModified, "NOT MODIFIED"},
	{StatusUseProxy, "USE PROXY"},
	{StatusTemporaryRedirect, "TEMPORARY REDIRECT"},
	{StatusPermanentRedirect, "PERMANENT REDIRECT"},

	{StatusBadRequest, "BAD REQUEST"},
	{StatusUnauthorized, "UNAUTHORIZED"},
	{StatusPaymentRequired, "PAYMENT REQUIRED"},
	{StatusForbidden, "FORBIDDEN"},
	{StatusNotFound, "NOT FOUND"},
	{StatusMethodNotAllowed, "METHOD NOT ALLOWED"},
	{StatusNotAcceptable, "NOT ACCEPTABLE"},
	{StatusProxyAuthRequired, "PROXY AUTHENTICATION REQUIRED"},
	{StatusRequestTimeout, "REQUEST TIMEOUT"},
	{StatusConflict, "CONFLICT"},
	{StatusGone, "GONE"},
	{StatusLengthRequired, "LENGTH REQUIRED"},
	{StatusPreconditionFailed, "PRECONDITION FAILED"},
	{StatusPayloadTooLarge, "PAYLOAD TOO LARGE"},
	{StatusURITooLong, "URI TOO LONG"},
	{StatusUnsupportedMediaType, "UNSUPPORTED MEDIA TYPE"},
	{StatusRangeNotSatisfiable, "RANGE NOT SATISFIABLE"},
	{StatusExpectationFailed, "EXPECTATION FAILED"},
	{StatusTeapot, "IM A TEAPOT"},
	{StatusMisdirectedRequest, "MISDIRECTED REQUEST"},
	{StatusUnprocessableEntity, "UNPROCESSABLE ENTITY"},
	{StatusLocked, "LOCKED"},
	{StatusFailedDependency, "FAILED DEPENDENCY"},
	{StatusTooEarly, "TOO EARLY"},
	{StatusUpgradeRequired, "UPGRADE REQUIRED"},
	{StatusPreconditionRequired, "PRECONDITION REQUIRED"},
	{StatusTooManyRequests, "TOO MANY REQUESTS"},
	{StatusRequestHeaderFieldsTooLarge, "REQUEST HEADER FIELDS TOO LARGE"},
	{StatusUnavailableForLegalReasons, "UNAVAILABLE FOR LEGAL REASONS"},

	{StatusInternalServerError, "INTERNAL SERVER ERROR"},
	{StatusNotImplemented, "NOT IMPLEMENTED"},
	{StatusBadGateway, "BAD GATEWAY"},
	{StatusServiceUnavailable, "SERVICE UNAVAILABLE"},
	{StatusGatewayTimeout, "GATEWAY TIMEOUT"},
	{StatusHTTPVersionNotSupported, "HTTP VERSION NOT SUPPORTED"},
	{StatusVariantAlsoNegotiates, "VARIANT ALSO NEGOTIATES"},
	{StatusInsufficientStorage, "INSUFFICIENT STORAGE"},
	{StatusLoopDetected, "LOOP DETECTED"},
	{StatusNotExtended, "NOT EXTENDED"},
	{StatusNetworkAuthenticationRequired, "NETWORK AUTHENTICATION REQUIRED"},
}

var reasons = func() map[StatusCode]string {
	m := make(map[StatusCode]string, len(statusTable))
	for _, s := range statusTable {
		m[s.code] = s.reason
	}
	return m
}()

// InvalidCodeError is returned by NewStatusCode for a number that is not a
// standard status code.
type InvalidCodeError struct {
	Code uint16
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid status code %d", e.Code)
}

// NewStatusCode accepts only codes present in the reason phrase table.
func NewStatusCode(code uint16) (StatusCode, error) {
	if _, ok := reasons[StatusCode(code)]; !ok {
		return 0, &InvalidCodeError{Code: code}
	}
	return StatusCode(code), nil
}

// ReasonPhrase returns the upper case reason phrase, or "" for a value that
// did not come from the table.
func (s StatusCode) ReasonPhrase() string {
	return reasons[s]
}

// Code returns the numeric value sent on the wire.
func (s StatusCode) Code() uint16 { return uint16(s) }

// Valid reports whether s is in the table.
func (s StatusCode) Valid() bool {
	_, ok := reasons[s]
	return ok
}

func (s StatusCode) String() string {
	return strconv.Itoa(int(s)) + " " + s.ReasonPhrase()
}
