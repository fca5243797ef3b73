package core

import (
	"context"
	"sync"
	"time"
)

// Store is the persistence contract the service depends on. Load returns the
// full collection (empty, not an error, when no data exists yet); Save
// atomically replaces it; NewID returns a fresh identifier unique among
// concurrently live ids.
type Store interface {
	Load(ctx context.Context) ([]User, error)
	Save(ctx context.Context, users []User) error
	NewID() string
}

// Service implements the operation surface of the directory. Every mutation
// is a load-modify-save over the full collection; the mutex serializes them
// so two concurrent creates cannot both pass uniqueness checks against the
// same snapshot (lost-update race in the load/save pair).
type Service struct {
	store Store

	mu sync.Mutex
}

// NewService creates a Service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListUsers returns the stored collection in persisted order.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return users, nil
}

// CreateUser validates the fields, checks email uniqueness against the whole
// store, and appends a new record with a fresh id and timestamps.
func (s *Service) CreateUser(ctx context.Context, fields UserFields) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized, violations := ValidateUser(fields)
	if len(violations) > 0 {
		return nil, &ValidationFailedError{Violations: violations}
	}

	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}

	if NewEmailSet(users, "").Has(normalized.Email) {
		return nil, &DuplicateEmailError{Email: normalized.Email, Scope: ScopeRecord}
	}

	now := time.Now().UTC()
	user := User{
		ID:          s.store.NewID(),
		FirstName:   normalized.FirstName,
		LastName:    normalized.LastName,
		Email:       normalized.Email,
		PhoneNumber: normalized.PhoneNumber,
		PANNumber:   normalized.PANNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Save(ctx, append(users, user)); err != nil {
		return nil, &StorageError{Op: "save", Err: err}
	}

	return &user, nil
}

// UpdateUser replaces every field of the record except id and createdAt.
// The uniqueness check excludes the record itself, so updating a user to its
// own unchanged email is never a conflict.
func (s *Service) UpdateUser(ctx context.Context, id string, fields UserFields) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}

	idx := findUser(users, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	normalized, violations := ValidateUser(fields)
	if len(violations) > 0 {
		return nil, &ValidationFailedError{Violations: violations}
	}

	if NewEmailSet(users, id).Has(normalized.Email) {
		return nil, &DuplicateEmailError{Email: normalized.Email, Scope: ScopeRecord}
	}

	users[idx].FirstName = normalized.FirstName
	users[idx].LastName = normalized.LastName
	users[idx].Email = normalized.Email
	users[idx].PhoneNumber = normalized.PhoneNumber
	users[idx].PANNumber = normalized.PANNumber
	users[idx].UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, users); err != nil {
		return nil, &StorageError{Op: "save", Err: err}
	}

	updated := users[idx]
	return &updated, nil
}

// DeleteUser removes the record with the given id.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.Load(ctx)
	if err != nil {
		return &StorageError{Op: "load", Err: err}
	}

	idx := findUser(users, id)
	if idx < 0 {
		return ErrNotFound
	}

	users = append(users[:idx], users[idx+1:]...)

	if err := s.store.Save(ctx, users); err != nil {
		return &StorageError{Op: "save", Err: err}
	}

	return nil
}

// findUser returns the index of the user with the given id, or -1.
func findUser(users []User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
