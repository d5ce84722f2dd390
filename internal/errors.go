package internal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies every failure the access layer can surface.
// Raw transport errors never reach callers; they arrive wrapped in an
// AccessError carrying one of these kinds.
type ErrorKind string

const (
	ErrorKindNotFound         ErrorKind = "NOT_FOUND"
	ErrorKindInvalidID        ErrorKind = "INVALID_ID"
	ErrorKindInvalidFilter    ErrorKind = "INVALID_FILTER"
	ErrorKindValidationFailed ErrorKind = "VALIDATION_FAILED"
	ErrorKindConflict         ErrorKind = "CONFLICT"
	ErrorKindMalformedEntity  ErrorKind = "MALFORMED_ENTITY"
	ErrorKindCancelled        ErrorKind = "CANCELLED"
	ErrorKindTransportFailure ErrorKind = "TRANSPORT_FAILURE"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AccessError struct {
	Kind        ErrorKind    `json:"kind"`
	Message     string       `json:"message"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`

	// StatusCode is the HTTP status the store answered with, 0 when the
	// failure happened before a response arrived.
	StatusCode int   `json:"-"`
	Cause      error `json:"-"`
}

func (e *AccessError) Error() string {
	if len(e.FieldErrors) > 0 {
		messages := make([]string, len(e.FieldErrors))
		for i, fe := range e.FieldErrors {
			messages[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
		}
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(messages, "; "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AccessError) Unwrap() error {
	return e.Cause
}

func NewNotFoundError(resource string, id int64) *AccessError {
	return &AccessError{
		Kind:    ErrorKindNotFound,
		Message: fmt.Sprintf("%s %d not found", resource, id),
	}
}

func NewInvalidIDError(resource string, id int64) *AccessError {
	return &AccessError{
		Kind:    ErrorKindInvalidID,
		Message: fmt.Sprintf("%d is not a valid %s id", id, resource),
	}
}

func NewInvalidFilterError(key, value string) *AccessError {
	return &AccessError{
		Kind:    ErrorKindInvalidFilter,
		Message: fmt.Sprintf("unrecognized filter value %q for %q", value, key),
	}
}

func NewValidationError(message string, fieldErrors []FieldError) *AccessError {
	return &AccessError{
		Kind:        ErrorKindValidationFailed,
		Message:     message,
		FieldErrors: fieldErrors,
	}
}

func NewConflictError(message string) *AccessError {
	return &AccessError{
		Kind:    ErrorKindConflict,
		Message: message,
	}
}

func NewMalformedEntityError(resource string, cause error) *AccessError {
	return &AccessError{
		Kind:    ErrorKindMalformedEntity,
		Message: fmt.Sprintf("malformed %s in response", resource),
		Cause:   cause,
	}
}

func NewCancelledError(cause error) *AccessError {
	return &AccessError{
		Kind:    ErrorKindCancelled,
		Message: "request cancelled",
		Cause:   cause,
	}
}

func NewTransportError(message string, statusCode int, cause error) *AccessError {
	return &AccessError{
		Kind:       ErrorKindTransportFailure,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

func IsAccessError(err error) (*AccessError, bool) {
	var accessErr *AccessError
	if errors.As(err, &accessErr) {
		return accessErr, true
	}
	return nil, false
}

// KindOf returns the classification of err, or the empty kind for errors
// that did not come from the access layer.
func KindOf(err error) ErrorKind {
	if accessErr, ok := IsAccessError(err); ok {
		return accessErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
