// Package apperr defines the error taxonomy shared by the guard, validation and
// HTTP layers. Every kind maps to one fixed status code and a stable message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindExternalService
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindExternalService:
		return "external_service"
	default:
		return "internal"
	}
}

// Status 回傳對應的 HTTP 狀態碼
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a Kind, the user-facing Message and the wrapped cause, which
// is only ever logged.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
}

// InvalidCredentials is the login failure; it does not say which part was wrong.
func InvalidCredentials() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Invalid credentials"}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "Forbidden"}
}

// NotFound builds "<resource> not found", e.g. NotFound("Task").
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Validation(field, rule string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: field + ": " + rule}
}

// InvalidBody reports a request body that could not be decoded.
func InvalidBody(err error) *Error {
	return &Error{Kind: KindValidation, Message: "invalid request body", Err: err}
}

func ExternalService(err error) *Error {
	return &Error{Kind: KindExternalService, Message: "Failed to generate suggestions", Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf reports the Kind of err; errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As converts any error into an *Error, wrapping unknown errors as Internal.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
