package core

// validation.go holds the field rules for a user record.
//
// The validator evaluates every rule independently and returns the complete
// ordered violation list, so a caller (the form or the import preview) sees
// all problems with a record at once instead of fixing them one at a time.

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxNameLength caps first and last names, counted in characters, not bytes.
const MaxNameLength = 50

// Pre-compiled field patterns (avoids recompilation on each call).
var (
	// local@domain with at least one dot in the domain
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	// PAN format: 5 letters, 4 digits, 1 letter (e.g., ABCDE1234F)
	panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// ValidationError represents a single rule violation for a field.
type ValidationError struct {
	Field   string // JSON field key (firstName, email, ...)
	Message string // Human-readable rule message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidateUser checks every field rule and returns the normalized fields
// (trimmed, PAN upper-cased) together with the violations found, in field
// order.
// Pure function: no side effects, deterministic, and idempotent on input
// that is already normalized.
func ValidateUser(f UserFields) (UserFields, []ValidationError) {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	f.PANNumber = strings.TrimSpace(f.PANNumber)

	var errs []ValidationError

	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if f.FirstName == "" {
		add("firstName", "First name is required")
	} else if utf8.RuneCountInString(f.FirstName) > MaxNameLength {
		add("firstName", "First name must be less than 50 characters")
	}

	if f.LastName == "" {
		add("lastName", "Last name is required")
	} else if utf8.RuneCountInString(f.LastName) > MaxNameLength {
		add("lastName", "Last name must be less than 50 characters")
	}

	if !emailRegex.MatchString(f.Email) {
		add("email", "Please enter a valid email address")
	}

	if !phoneRegex.MatchString(f.PhoneNumber) {
		add("phoneNumber", "Phone number must be exactly 10 digits")
	}

	pan := strings.ToUpper(f.PANNumber)
	if len(f.PANNumber) != 10 {
		add("panNumber", "PAN number must be exactly 10 characters")
	}
	if !panRegex.MatchString(pan) {
		add("panNumber", "PAN format must be 5 letters, 4 digits, 1 letter (e.g., ABCDE1234F)")
	}

	if len(errs) > 0 {
		return f, errs
	}

	f.PANNumber = pan
	return f, nil
}
