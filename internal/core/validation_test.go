package core

import (
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// ValidateUser Tests
// ----------------------------------------------------------------------------

func validFields() UserFields {
	return UserFields{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "9876543210",
		PANNumber:   "ABCDE1234F",
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*UserFields)
		wantErrs []string
	}{
		// Valid input
		{
			name:     "all fields valid",
			mutate:   func(f *UserFields) {},
			wantErrs: nil,
		},
		{
			name: "whitespace trimmed before checks",
			mutate: func(f *UserFields) {
				f.FirstName = "  John  "
				f.Email = " john.doe@example.com "
			},
			wantErrs: nil,
		},

		// Required fields
		{
			name:     "missing first name",
			mutate:   func(f *UserFields) { f.FirstName = "" },
			wantErrs: []string{"First name is required"},
		},
		{
			name:     "whitespace only first name",
			mutate:   func(f *UserFields) { f.FirstName = "   " },
			wantErrs: []string{"First name is required"},
		},
		{
			name:     "missing last name",
			mutate:   func(f *UserFields) { f.LastName = "" },
			wantErrs: []string{"Last name is required"},
		},

		// Length limits
		{
			name:     "first name too long",
			mutate:   func(f *UserFields) { f.FirstName = strings.Repeat("a", 51) },
			wantErrs: []string{"First name must be less than 50 characters"},
		},
		{
			name:     "first name at limit",
			mutate:   func(f *UserFields) { f.FirstName = strings.Repeat("a", 50) },
			wantErrs: nil,
		},
		{
			name:     "accented name counted in characters not bytes",
			mutate:   func(f *UserFields) { f.FirstName = strings.Repeat("é", 30) },
			wantErrs: nil,
		},
		{
			name:     "accented name at limit",
			mutate:   func(f *UserFields) { f.FirstName = strings.Repeat("é", 50) },
			wantErrs: nil,
		},
		{
			name:     "accented name over limit",
			mutate:   func(f *UserFields) { f.FirstName = strings.Repeat("é", 51) },
			wantErrs: []string{"First name must be less than 50 characters"},
		},
		{
			name:     "last name too long",
			mutate:   func(f *UserFields) { f.LastName = strings.Repeat("b", 51) },
			wantErrs: []string{"Last name must be less than 50 characters"},
		},

		// Email
		{
			name:     "missing email",
			mutate:   func(f *UserFields) { f.Email = "" },
			wantErrs: []string{"Please enter a valid email address"},
		},
		{
			name:     "email without at sign",
			mutate:   func(f *UserFields) { f.Email = "john.example.com" },
			wantErrs: []string{"Please enter a valid email address"},
		},
		{
			name:     "email without domain dot",
			mutate:   func(f *UserFields) { f.Email = "john@example" },
			wantErrs: []string{"Please enter a valid email address"},
		},
		{
			name:     "email with spaces",
			mutate:   func(f *UserFields) { f.Email = "john doe@example.com" },
			wantErrs: []string{"Please enter a valid email address"},
		},

		// Phone number
		{
			name:     "phone too short",
			mutate:   func(f *UserFields) { f.PhoneNumber = "123456789" },
			wantErrs: []string{"Phone number must be exactly 10 digits"},
		},
		{
			name:     "phone too long",
			mutate:   func(f *UserFields) { f.PhoneNumber = "12345678901" },
			wantErrs: []string{"Phone number must be exactly 10 digits"},
		},
		{
			name:     "phone with letters",
			mutate:   func(f *UserFields) { f.PhoneNumber = "98765abcde" },
			wantErrs: []string{"Phone number must be exactly 10 digits"},
		},
		{
			name:     "phone with dashes",
			mutate:   func(f *UserFields) { f.PhoneNumber = "987-654-3210" },
			wantErrs: []string{"Phone number must be exactly 10 digits"},
		},

		// PAN number
		{
			name:   "pan too short",
			mutate: func(f *UserFields) { f.PANNumber = "ABCDE1234" },
			wantErrs: []string{
				"PAN number must be exactly 10 characters",
				"PAN format must be 5 letters, 4 digits, 1 letter (e.g., ABCDE1234F)",
			},
		},
		{
			name:     "pan wrong shape but right length",
			mutate:   func(f *UserFields) { f.PANNumber = "1BCDE1234F" },
			wantErrs: []string{"PAN format must be 5 letters, 4 digits, 1 letter (e.g., ABCDE1234F)"},
		},
		{
			name:     "pan lowercase accepted",
			mutate:   func(f *UserFields) { f.PANNumber = "abcde1234f" },
			wantErrs: nil,
		},

		// Multiple failures reported together
		{
			name: "multiple invalid fields",
			mutate: func(f *UserFields) {
				f.FirstName = ""
				f.Email = "bad"
				f.PhoneNumber = "12"
			},
			wantErrs: []string{
				"First name is required",
				"Please enter a valid email address",
				"Phone number must be exactly 10 digits",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)

			_, errs := ValidateUser(fields)

			if len(errs) != len(tt.wantErrs) {
				t.Fatalf("got %d errors %v, want %d %v", len(errs), errs, len(tt.wantErrs), tt.wantErrs)
			}
			for i, want := range tt.wantErrs {
				if errs[i].Message != want {
					t.Errorf("error %d = %q, want %q", i, errs[i].Message, want)
				}
			}
		})
	}
}

func TestValidateUserNormalizesPAN(t *testing.T) {
	fields := validFields()
	fields.PANNumber = "abcde1234f"

	got, errs := ValidateUser(fields)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got.PANNumber != "ABCDE1234F" {
		t.Errorf("PANNumber = %q, want %q", got.PANNumber, "ABCDE1234F")
	}
}

func TestValidateUserTrimsFields(t *testing.T) {
	fields := validFields()
	fields.FirstName = "  John "
	fields.Email = " john.doe@example.com"

	got, errs := ValidateUser(fields)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got.FirstName != "John" {
		t.Errorf("FirstName = %q, want %q", got.FirstName, "John")
	}
	if got.Email != "john.doe@example.com" {
		t.Errorf("Email = %q, want %q", got.Email, "john.doe@example.com")
	}
}

func TestValidationErrorString(t *testing.T) {
	ve := ValidationError{Field: "email", Message: "Please enter a valid email address"}
	want := "email: Please enter a valid email address"
	if ve.Error() != want {
		t.Errorf("Error() = %q, want %q", ve.Error(), want)
	}
}
