package lazyload

import (
	"errors"
	"fmt"
)

var (
	ErrFetchFailed = errors.New("unable to fetch data from source")
	ErrStaleUpdate = errors.New("fetch result arrived for a torn down or satisfied state")
	ErrEmptyResult = errors.New("source returned no items")
)

// FetchError describes a failed fetch.
// It matches ErrFetchFailed and the underlying source error with errors.Is.
type FetchError struct {
	// Op is the name of the failed operation. (e.g. "list", "initial-page", "remaining-page")
	Op string

	// Err is the error returned by the source, or the recovered panic.
	Err error
}

// NewFetchError wraps err as a FetchError. It returns nil for a nil err.
func NewFetchError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Op: op, Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFetchFailed.Error(), e.Op, e.Err)
}

// Unwrap returns both ErrFetchFailed and the wrapped error.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Err}
}
