package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an operation references an id that is not in
// the store.
var ErrNotFound = errors.New("user not found")

// ErrEmptyBatch is returned when an import receives zero data rows. An empty
// file is a distinct failure, never a success with count 0.
var ErrEmptyBatch = errors.New("file is empty")

// DuplicateScope identifies which uniqueness scope a conflict was found in.
type DuplicateScope string

const (
	// ScopeStore: the email matches a record already persisted.
	ScopeStore DuplicateScope = "store"
	// ScopeBatch: the email matches a row accepted earlier in the same batch.
	ScopeBatch DuplicateScope = "batch"
	// ScopeRecord: single-record create/update conflict.
	ScopeRecord DuplicateScope = "record"
)

// DuplicateEmailError reports a uniqueness conflict on the email business key.
type DuplicateEmailError struct {
	Email string
	Scope DuplicateScope
}

func (e *DuplicateEmailError) Error() string {
	switch e.Scope {
	case ScopeBatch:
		return fmt.Sprintf("Duplicate email %s found in the file", e.Email)
	case ScopeStore:
		return fmt.Sprintf("Email %s already exists", e.Email)
	default:
		return "User with this email already exists"
	}
}

// ValidationFailedError carries the ordered list of field violations for one
// record. Every rule is evaluated, so the caller sees all problems at once.
type ValidationFailedError struct {
	Violations []ValidationError
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages returns the violations as display strings, in rule order.
func (e *ValidationFailedError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return msgs
}

// StorageError wraps an I/O failure from the store. It is always surfaced to
// the caller so "your data was rejected" and "we could not persist your data"
// stay distinguishable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
