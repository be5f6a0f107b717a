package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error taxonomy. Handlers map these to HTTP statuses; everything else is a
// store failure whose cause is logged, not shown.
var (
	// ErrUnauthorized: no caller identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound: project or account absent. Listing treats unreadable
	// projects the same way so existence does not leak.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: authenticated, target exists, but the caller lacks the
	// specific right.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTarget: a note/file delete handle that does not resolve.
	ErrInvalidTarget = errors.New("delete target not found")
	// ErrValidation: malformed field value.
	ErrValidation = errors.New("validation failed")
	// ErrStore: underlying persistence or blob error.
	ErrStore = errors.New("store failure")
)

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

func storeFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}

// isRecordNotFound reports whether a store error means "no such row".
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
