package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidEntry   = errors.New("invalid food entry")
	ErrDuplicateEntry = errors.New("duplicate canonical name")
	ErrEmptyDatabase  = errors.New("empty food database")
	ErrInvalidConfig  = errors.New("invalid configuration")
)
