package session

import (
	"errors"
	"fmt"
)

// Sentinel errors for resume failures. Callers match with errors.Is and
// offer a fresh session instead of treating these as fatal.
var (
	ErrNotFound  = errors.New("session not found")
	ErrExpired   = errors.New("session expired")
	ErrCorrupted = errors.New("session data corrupted")
)

// PersistenceError wraps a failed save or load. Callers may downgrade
// it to in-memory-only operation with a warning rather than aborting
// the test.
type PersistenceError struct {
	Op   string // "create", "save", "load"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("session %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
