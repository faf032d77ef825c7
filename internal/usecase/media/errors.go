package media

import (
	"errors"
	"fmt"
)

// Storage sentinels; the minio layer maps response codes onto these.
var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)

// ErrNotFound covers both "does not exist" and "not owned by the acting
// artist": the two must stay indistinguishable to the caller.
var ErrNotFound = errors.New("media: not found")

// ValidationError rejects a request before any side effect happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErrorf(format string, a ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, a...)}
}
