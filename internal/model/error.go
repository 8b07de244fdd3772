package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Standard error codes for domain failures
const (
	ErrCodeResourceNotFound = "RESOURCE_NOT_FOUND"
	ErrCodeParse            = "PARSE_ERROR"
	ErrCodeMissingKey       = "MISSING_KEY"
	ErrCodeIO               = "IO_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError carrying the same code, so that
// errors.Is(err, ErrParse) matches every parse failure regardless of message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrResourceNotFound = NewDomainError(ErrCodeResourceNotFound, "resource not found")
	ErrParse            = NewDomainError(ErrCodeParse, "malformed resource content")
	ErrMissingKey       = NewDomainError(ErrCodeMissingKey, "required key missing")
	ErrIO               = NewDomainError(ErrCodeIO, "resource access failed")
)

// NotFoundError reports that the named backing resource does not exist.
func NotFoundError(resource string, err error) error {
	return &DomainError{
		Code:    ErrCodeResourceNotFound,
		Message: fmt.Sprintf("resource %s not found", resource),
		Err:     err,
	}
}

// ParseError reports malformed content in the named resource.
func ParseError(resource string, format string, args ...any) error {
	return &DomainError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("malformed %s: %s", resource, fmt.Sprintf(format, args...)),
	}
}

// MissingKeyError reports a lookup of a key the table does not hold.
func MissingKeyError(table, key string) error {
	return &DomainError{
		Code:    ErrCodeMissingKey,
		Message: fmt.Sprintf("%s has no entry for %q", table, key),
	}
}

// IOError reports any other failure while accessing the named resource.
func IOError(resource string, err error) error {
	return &DomainError{
		Code:    ErrCodeIO,
		Message: fmt.Sprintf("failed to read resource %s", resource),
		Err:     err,
	}
}

// ErrorCode extracts the domain error code from err, or "" when err carries no
// DomainError.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
