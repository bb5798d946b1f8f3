package store

import "errors"

// Sentinel errors so callers can branch with errors.Is instead of matching
// driver error strings.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
)
