// ABOUTME: Application error taxonomy shared by the core and its surfaces
// ABOUTME: NotFound, Validation and InvariantViolation with errors.As predicates

package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an AppError.
type Code string

const (
	CodeNotFound           Code = "NOT_FOUND"
	CodeValidation         Code = "VALIDATION"
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"
	CodeInternal           Code = "INTERNAL"
)

// AppError is the error type returned by directory lookups, the
// conversation aggregator and the message composer.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// New builds an AppError with the given code.
func New(code Code, format string, args ...any) error {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to cause.
func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func NotFound(format string, args ...any) error {
	return New(CodeNotFound, format, args...)
}

func Validation(format string, args ...any) error {
	return New(CodeValidation, format, args...)
}

func InvariantViolation(format string, args ...any) error {
	return New(CodeInvariantViolation, format, args...)
}

// CodeOf returns the code of the first AppError in err's chain,
// or CodeInternal when there is none.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

func IsNotFound(err error) bool {
	return err != nil && CodeOf(err) == CodeNotFound
}

func IsValidation(err error) bool {
	return err != nil && CodeOf(err) == CodeValidation
}

func IsInvariantViolation(err error) bool {
	return err != nil && CodeOf(err) == CodeInvariantViolation
}
