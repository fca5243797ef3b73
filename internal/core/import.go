package core

// import.go is the batch reconciler: one ordered scan over the import rows,
// collecting every row problem, with an all-or-nothing commit at the end.
//
// The scan is strictly sequential because later rows' duplicate checks depend
// on the emails accepted by earlier rows. A single bad row invalidates the
// whole batch: partial imports would silently diverge from the uploaded file,
// while a full rejection lets the operator fix the source file and re-run it
// deterministically.

import (
	"context"
	"fmt"
	"time"
)

// ImportBatch validates and commits a batch of rows. The store snapshot is
// loaded once at the start, never re-read per row.
//
// Error returns are reserved for failures of the operation itself (empty
// input, storage). Row-level problems are collected into the result: if any
// row fails, nothing is committed and Errors lists every offending row with
// all of its violations.
func (s *Service) ImportBatch(ctx context.Context, rows []BatchRow) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}

	// Store emails are fixed for the whole scan; accepted batch emails grow
	// as rows are accepted.
	storeEmails := NewEmailSet(users, "")
	batchEmails := make(EmailSet, len(rows))

	var (
		accepted  []User
		rowErrors []RowError
	)

	now := time.Now().UTC()

	for i, row := range rows {
		line := row.Line
		if line == 0 {
			// Rows built without source positions: data starts at line 2,
			// after the header row.
			line = i + 2
		}

		normalized, violations := ValidateUser(row.Fields)
		if len(violations) > 0 {
			msgs := make([]string, len(violations))
			for j, v := range violations {
				msgs[j] = v.Error()
			}
			rowErrors = append(rowErrors, RowError{Row: line, Errors: msgs})
			continue
		}

		if dup := ResolveDuplicate(normalized.Email, storeEmails, batchEmails); dup != nil {
			rowErrors = append(rowErrors, RowError{Row: line, Errors: []string{dup.Error()}})
			continue
		}

		accepted = append(accepted, User{
			ID:          s.store.NewID(),
			FirstName:   normalized.FirstName,
			LastName:    normalized.LastName,
			Email:       normalized.Email,
			PhoneNumber: normalized.PhoneNumber,
			PANNumber:   normalized.PANNumber,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		batchEmails.Add(normalized.Email)
	}

	if len(rowErrors) > 0 {
		return &ImportResult{
			Success: false,
			Message: fmt.Sprintf("Found %d error(s) in the file. Please fix them and try again.", len(rowErrors)),
			Errors:  rowErrors,
		}, nil
	}

	if err := s.store.Save(ctx, append(users, accepted...)); err != nil {
		return nil, &StorageError{Op: "save", Err: err}
	}

	return &ImportResult{
		Success: true,
		Message: fmt.Sprintf("Successfully uploaded %d user(s)", len(accepted)),
		Created: len(accepted),
	}, nil
}
