package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateIdentifier = errors.New("duplicate order identifier")
	ErrUnknownOrder        = errors.New("unknown order")
	ErrNotFound            = errors.New("order not found")
	ErrAlreadyAttached     = errors.New("record already attached")
	ErrIntegrityViolation  = errors.New("integrity violation")
)

// ValidationError reports which fields failed and why.
type ValidationError struct {
	Reason string
	Cause  error
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: sanitize(reason)}
}

// NewValidationErrorWithCause humanizes validator.ValidationErrors when cause is one.
func NewValidationErrorWithCause(cause error) *ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(cause, &verrs) {
		return &ValidationError{Reason: humanize(verrs), Cause: cause}
	}
	return &ValidationError{Reason: sanitize(cause.Error()), Cause: cause}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func humanize(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	return strings.TrimSuffix(b.String(), "; ")
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
