package shared

import (
	"errors"
	"fmt"
)

// ConflictError reports that a concurrent writer won a race on a uniquely-constrained record.
type ConflictError struct {
	Resource string
	Err      error
}

func (e *ConflictError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conflict on %s: %v", e.Resource, e.Err)
	}
	return "conflict on " + e.Resource
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
