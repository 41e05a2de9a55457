package store

import "errors"

var (
	// ErrPendingWriteNotFound indicates that no queue entry exists for the
	// requested identity key.
	ErrPendingWriteNotFound = errors.New("pending write not found")
)
