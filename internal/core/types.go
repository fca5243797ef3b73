// Package core provides the business logic for the user directory:
// field validation, duplicate resolution, single-record mutations, and
// all-or-nothing batch imports.
package core

import "time"

// User is a persisted directory entry. The email is the business key and is
// unique across the whole store; the id is assigned at creation and never
// changes.
type User struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	PANNumber   string    `json:"panNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserFields is the mutable field set of a user, as submitted by the form or
// by one import row. It carries raw input; ValidateUser produces the
// normalized version.
type UserFields struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	PANNumber   string `json:"panNumber"`
}

// BatchRow is one row of an import file. Line is the 1-based line number in
// the source file (data starts at line 2, after the header row).
type BatchRow struct {
	Line   int
	Fields UserFields
}

// RowError bundles every problem found on a single import row.
type RowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// ImportResult reports the outcome of a batch import. A batch either creates
// Created records (Success true, Errors empty) or creates nothing and lists
// every offending row.
type ImportResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Created int        `json:"successCount,omitempty"`
	Errors  []RowError `json:"errors,omitempty"`
}
