package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies validation failures surfaced to callers.
type ErrorCode string

const (
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeInvalidPeriod ErrorCode = "INVALID_PERIOD"
)

var (
	// ErrInvalidInput matches any ValidationError with CodeInvalidInput.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidPeriod matches any ValidationError with CodeInvalidPeriod.
	ErrInvalidPeriod = errors.New("invalid period")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// Is lets errors.Is match the package sentinels by code.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Code == CodeInvalidInput
	case ErrInvalidPeriod:
		return e.Code == CodeInvalidPeriod
	}
	return false
}

// InvalidInput builds a CodeInvalidInput error for field.
func InvalidInput(field, message string) *ValidationError {
	return &ValidationError{Code: CodeInvalidInput, Field: field, Message: message}
}

// InvalidPeriod builds a CodeInvalidPeriod error for field.
func InvalidPeriod(field, message string) *ValidationError {
	return &ValidationError{Code: CodeInvalidPeriod, Field: field, Message: message}
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
