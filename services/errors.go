package services

import (
	"errors"
	"fmt"

	"naya-blog/repositories"
)

// Error kinds returned by the services. Handlers map them to status codes with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("slug already exists")
	ErrNotFound    = errors.New("post not found")
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError carries a client-facing message and matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func validationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// storeError translates repository errors into service error kinds.
func storeError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repositories.ErrDuplicateSlug):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
	}
}
