package service

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidStyle          = errors.New("invalid style")
	ErrPayloadInvalid        = errors.New("payload failed validation")
	ErrEmptyPayloadName      = errors.New("payload name is empty")
	ErrPayloadNameTooLong    = errors.New("payload name is too long")
	ErrInvalidPayloadID      = errors.New("invalid payload id")
	ErrInvalidRetention      = errors.New("retention must be positive")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// ValidationError is returned when a field set is rejected on save.
// Reason is the message produced by the validator.
type ValidationError struct {
	Reason string
	cause  error
}

// NewValidationError wraps the rejection cause, which may be nil when only
// the reason text is known.
func NewValidationError(reason string, cause error) *ValidationError {
	return &ValidationError{Reason: strings.TrimSpace(reason), cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return ErrPayloadInvalid.Error()
	}
	return ErrPayloadInvalid.Error() + ": " + e.Reason
}

func (e *ValidationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrPayloadInvalid}
	}
	return []error{ErrPayloadInvalid, e.cause}
}
