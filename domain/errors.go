package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors. Credential failures share a single message so the
// caller can never tell which field was wrong.
var (
	ErrUserNotFound        = NewError(ErrCodeNotFound, "user not found")
	ErrMentorshipNotFound  = NewError(ErrCodeNotFound, "mentorship not found")
	ErrTaskNotFound        = NewError(ErrCodeNotFound, "task not found")
	ErrAuthSessionNotFound = NewError(ErrCodeNotFound, "auth session not found")

	ErrDuplicateEmail      = NewError(ErrCodeConflict, "email already registered")
	ErrDuplicateMentorship = NewError(ErrCodeConflict, "mentorship already exists")

	ErrInvalidCredentials = NewError(ErrCodeUnauthorized, "invalid credentials")
	ErrUnauthorized       = NewError(ErrCodeForbidden, "unauthorized")

	ErrInvalidMentorship = NewError(ErrCodeInvalid, "invalid mentorship")
	ErrInvalidStatus     = NewError(ErrCodeInvalid, "invalid task status")
	ErrInvalidRole       = NewError(ErrCodeInvalid, "invalid role")
	ErrInvalidProgress   = NewError(ErrCodeInvalid, "progress must be between 0 and 100")
	ErrPasswordMismatch  = NewError(ErrCodeInvalid, "passwords do not match")
	ErrMissingFields     = NewError(ErrCodeInvalid, "all fields are required")
	ErrInvalidPayload    = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
