package core

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIError is a failed backend call. StatusCode is 0 when the request
// never reached the server (network failure).
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func NewAPIError(code int, msg string, err error) *APIError {
	return &APIError{StatusCode: code, Message: msg, Err: err}
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return "network error: " + e.Message
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) IsNetwork() bool { return e.StatusCode == 0 }

// StatusCode returns the HTTP status carried by err, or 0 if err is not
// an APIError (or was a network failure).
func StatusCode(err error) int {
	var apiErr *APIError
	if stderrors.As(errors.Cause(err), &apiErr) {
		return apiErr.StatusCode
	}
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool     { return StatusCode(err) == http.StatusNotFound }
func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }
func IsForbidden(err error) bool    { return StatusCode(err) == http.StatusForbidden }

// PermissionError is raised client-side when the stored role fails an
// operation's allow-list, before any network call is made.
type PermissionError struct {
	Role string
	Op   string
}

func (e *PermissionError) Error() string {
	role := e.Role
	if role == "" {
		role = "anonymous"
	}
	return fmt.Sprintf("role %s is not allowed to %s", role, e.Op)
}

// PartialWriteError reports a two-step composite write whose first call
// succeeded and second call failed. No compensating rollback is attempted;
// CreatedID identifies the entity left behind by the first call.
type PartialWriteError struct {
	Created   string // resource created by the first call, e.g. "medical-items"
	CreatedID string
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write: %s/%s created but follow-up call failed: %v", e.Created, e.CreatedID, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
