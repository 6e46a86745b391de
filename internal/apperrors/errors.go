package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that the resource is not in a state that allows the operation.
var ErrInvalidState = errors.New("invalid state")

// ErrPrecondition indicates that a business precondition for the operation was not met.
var ErrPrecondition = errors.New("precondition failed")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal marks infrastructure failures (store unavailable, commit failed).
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-style status code alongside the wrapped cause.
// Codes >= 500 match ErrInternal under errors.Is; 400, 404 and 409 match their kinds.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether the error belongs to the kind represented by target.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrInternal:
		return e.Code >= http.StatusInternalServerError
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrDuplicate:
		return e.Code == http.StatusConflict
	}
	return false
}

// NewNotFoundError wraps ErrNotFound with the name of the missing resource.
func NewNotFoundError(resource string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, resource)
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// NewConflictError wraps ErrDuplicate with a message.
func NewConflictError(msg string) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, msg)
}

// Error is a named business error that belongs to one of the kind sentinels above.
// errors.Is matches both the named error itself and its kind.
type Error struct {
	kind error
	msg  string
}

// Define declares a named error of the given kind.
func Define(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// DetailedError attaches a list of human-readable reasons to a cause.
type DetailedError struct {
	Cause   error
	Details []string
}

// WithDetails wraps cause with the reasons that produced it.
func WithDetails(cause error, details ...string) error {
	return &DetailedError{Cause: cause, Details: details}
}

func (e *DetailedError) Error() string {
	if len(e.Details) == 0 {
		return e.Cause.Error()
	}
	return e.Cause.Error() + ": " + strings.Join(e.Details, "; ")
}

func (e *DetailedError) Unwrap() error {
	return e.Cause
}

// Details returns the reasons attached anywhere in err's chain, or nil.
func Details(err error) []string {
	var de *DetailedError
	if errors.As(err, &de) {
		return de.Details
	}
	return nil
}
