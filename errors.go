package docstruct

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to transport-level failures
// (HTTP status, timeouts) as well as validation problems. Per-page fetch and
// parse errors are recorded and skipped at the crawl boundary; only seed-URL
// validation failures and total unreachability surface to the caller.
const (
	EINVALID     = "invalid"     // validation failed (seed URL, base URL, unparseable input)
	ENOTFOUND    = "not_found"   // resource does not exist (HTTP 404)
	ETIMEOUT     = "timeout"     // deadline exceeded while fetching
	ETOOLARGE    = "too_large"   // response body exceeded the configured ceiling
	EUNAVAILABLE = "unavailable" // connection-level failure or non-2xx status
	EINTERNAL    = "internal"    // unexpected internal error
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docstruct error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
