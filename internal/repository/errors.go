package repository

import "errors"

var (
	// ErrDuplicate reports an insert whose key is already taken.
	ErrDuplicate = errors.New("duplicate key")
	// ErrNotFound reports an update against an absent key.
	ErrNotFound = errors.New("not found")
)
