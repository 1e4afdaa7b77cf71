package errs

import "errors"

// Markers shared across layers. Use-case packages attach them with Mark so that
// handlers can classify failures without importing infra.
var (
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDependencyUnavailable   = errors.New("dependency unavailable")
)
