// Package errors gives stylewheel failures a machine-readable [Code].
//
// The CLI prints [Error] values as-is; the HTTP server reports
// [UserMessage] and the code in a JSON body, with the status taken from
// [Code.HTTPStatus]:
//
//	if r <= 0 {
//	    return errors.New(errors.ErrCodeInvalidGeometry, "radius must be positive, got %g", r)
//	}
//	...
//	return errors.Wrap(errors.ErrCodeNetwork, err, "fetch catalog from %s", url)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable identifier for a failure category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"    // malformed coordinates or query values
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY" // non-positive radius, non-finite center
	ErrCodeInvalidParams   Code = "INVALID_PARAMS"   // blend tuning out of range
	ErrCodeInvalidCatalog  Code = "INVALID_CATALOG"  // duplicate or malformed style entries
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"

	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNetwork  Code = "NETWORK_ERROR"
	ErrCodeTimeout  Code = "TIMEOUT"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// HTTPStatus maps the code to the status the server answers with. Unknown
// and empty codes are internal errors.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidGeometry, ErrCodeInvalidParams,
		ErrCodeInvalidCatalog, ErrCodeInvalidConfig, ErrCodeInvalidStyle:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeNetwork:
		return http.StatusBadGateway
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// outermost returns the first *Error in err's chain, or nil.
func outermost(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether the outermost *Error in err's chain carries code.
func Is(err error, code Code) bool {
	e := outermost(err)
	return e != nil && e.Code == code
}

// GetCode returns the outermost code in err's chain, or "".
func GetCode(err error) Code {
	if e := outermost(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix from *Error values; other errors are
// returned as err.Error().
func UserMessage(err error) string {
	if e := outermost(err); e != nil {
		return e.Message
	}
	return err.Error()
}
