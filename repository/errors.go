package repository

import "errors"

var (
	// ErrNotFound means no record matched the given identifier or lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey means a unique field (username/email) already exists.
	ErrDuplicateKey = errors.New("duplicate key")
)
