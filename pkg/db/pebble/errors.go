package pebble

import "errors"

var (
	ErrClosed          = errors.New("store: database is closed")
	ErrNotFound        = errors.New("store: key not found")
	ErrBatchDone       = errors.New("store: batch already committed or closed")
	ErrIteratorInvalid = errors.New("store: iterator is not positioned on a key")
	ErrInvalidKey      = errors.New("store: malformed key")

	ErrInIteratorCreation = "store: creating iterator: %w"
	ErrIteratorValue      = "store: reading iterator value: %w"
)
