package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindNotFound
	KindDependencyUnavailable
)

// Stable error codes returned to callers in the envelope "code" member.
const (
	CodeInternal          = "SYS_10001"
	CodeValidationFailed  = "SYS_10003"
	CodeNotFound          = "SYS_10005"
	CodeInvalidToken      = "AUTH_1004"
	CodeInvalidImage      = "DONUT_7003"
	CodeRecognitionFailed = "DONUT_7002"
	CodeWeb3Unavailable   = "WEB3_8001"
	CodeInvalidAddress    = "WEB3_8004"
	CodeWeb3RequestFailed = "WEB3_8003"
)

// Error is the error type carried from services to handlers.
// Message is safe to show to the caller; Err is for logs only.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func InvalidInput(code, message string) *Error {
	if code == "" {
		code = CodeValidationFailed
	}
	return &Error{Kind: KindInvalidInput, Code: code, Message: message}
}

func MissingField(field string) *Error {
	return InvalidInput(CodeValidationFailed, "Missing required field: "+field)
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: CodeInvalidToken, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: message}
}

func DependencyUnavailable(message string, err error) *Error {
	return &Error{Kind: KindDependencyUnavailable, Code: CodeWeb3Unavailable, Message: message, Err: err}
}

func Internal(code, message string, err error) *Error {
	if code == "" {
		code = CodeInternal
	}
	return &Error{Kind: KindInternal, Code: code, Message: message, Err: err}
}

// From extracts an *Error from err. Anything else becomes an Internal error
// whose message is the error text.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(CodeInternal, err.Error(), err)
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
