package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a feed item, comment or canonical record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateProjection means a feed entry already exists for the key. The projector treats it as success.
	ErrDuplicateProjection = errors.New("feed entry already projected")
	// ErrConstraintConflict means a like already exists for (user, key). ToggleLike turns it into an unlike.
	ErrConstraintConflict = errors.New("constraint conflict")
	// ErrValidation marks malformed input.
	ErrValidation = errors.New("validation failed")
)

func validationError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}
