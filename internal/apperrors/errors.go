// Package apperrors provides the standardized error taxonomy for the API.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of failure. Handlers map codes to HTTP statuses.
type Code string

const (
	CodeValidation Code = "VALIDATION_FAILED"
	CodeNotFound   Code = "NOT_FOUND"
	CodeDependency Code = "DEPENDENCY_FAILURE"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// Error is a structured application error.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidation reports missing or malformed client input.
func NewValidation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// NewValidationf is NewValidation with formatting.
func NewValidationf(format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound reports an absent referenced entity, e.g. "Candidate not found".
func NewNotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// NewDependency wraps a failure in storage or another downstream collaborator.
func NewDependency(message string, err error) *Error {
	e := &Error{Code: CodeDependency, Message: message, Err: err}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// NewInternal wraps an unexpected server-side failure.
func NewInternal(message string, err error) *Error {
	e := &Error{Code: CodeInternal, Message: message, Err: err}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

func IsValidation(err error) bool { return hasCode(err, CodeValidation) }
func IsNotFound(err error) bool   { return hasCode(err, CodeNotFound) }
func IsDependency(err error) bool { return hasCode(err, CodeDependency) }

func hasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// HTTPStatus maps an error to the response status the API contract promises.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDependency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the human-readable message for the response body.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
