package storage

import "errors"

var (
	// ErrNotFound indicates that no document matches the query.
	ErrNotFound = errors.New("storage: not found")
	// ErrUnavailable indicates a closed store, an unusable backing directory
	// or a cancelled context.
	ErrUnavailable = errors.New("storage: unavailable")
	// ErrInvalidDocument indicates a document that cannot be stored.
	ErrInvalidDocument = errors.New("storage: invalid document")
)
