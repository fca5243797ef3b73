package core

import (
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// ParseImportFile Tests
// ----------------------------------------------------------------------------

const sampleCSV = "First Name,Last Name,Email,Phone Number,PAN Number\n" +
	"John,Doe,john.doe@example.com,9876543210,ABCDE1234F\n" +
	"Jane,Smith,jane.smith@example.com,8765432109,FGHIJ5678K\n"

func TestParseImportFile(t *testing.T) {
	rows, err := ParseImportFile([]byte(sampleCSV), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	want := UserFields{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "9876543210",
		PANNumber:   "ABCDE1234F",
	}
	if rows[0].Fields != want {
		t.Errorf("row 0 fields = %+v, want %+v", rows[0].Fields, want)
	}

	// First data row is line 2 of the file (after the header).
	if rows[0].Line != 2 || rows[1].Line != 3 {
		t.Errorf("lines = %d, %d; want 2, 3", rows[0].Line, rows[1].Line)
	}
}

func TestParseImportFileHeaderAliases(t *testing.T) {
	csv := "firstName,lastName,email,phoneNumber,panNumber\n" +
		"John,Doe,john@example.com,9876543210,ABCDE1234F\n"

	rows, err := ParseImportFile([]byte(csv), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Fields.FirstName != "John" {
		t.Fatalf("got %+v", rows)
	}
}

func TestParseImportFileColumnOrderIndependent(t *testing.T) {
	csv := "Email,First Name,Last Name,PAN Number,Phone Number\n" +
		"john@example.com,John,Doe,ABCDE1234F,9876543210\n"

	rows, err := ParseImportFile([]byte(csv), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := rows[0].Fields
	if got.Email != "john@example.com" || got.PhoneNumber != "9876543210" {
		t.Errorf("fields mapped by position, not header: %+v", got)
	}
}

func TestParseImportFileSkipsPreamble(t *testing.T) {
	csv := "Quarterly user export\n" +
		"Generated 2024-01-15\n" +
		"First Name,Last Name,Email,Phone Number,PAN Number\n" +
		"John,Doe,john@example.com,9876543210,ABCDE1234F\n"

	rows, err := ParseImportFile([]byte(csv), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	// Header on line 3, so the data row is line 4.
	if rows[0].Line != 4 {
		t.Errorf("Line = %d, want 4", rows[0].Line)
	}
}

func TestParseImportFileSkipsEmptyRows(t *testing.T) {
	csv := "First Name,Last Name,Email,Phone Number,PAN Number\n" +
		"John,Doe,john@example.com,9876543210,ABCDE1234F\n" +
		",,,,\n" +
		"Jane,Smith,jane@example.com,8765432109,FGHIJ5678K\n"

	rows, err := ParseImportFile([]byte(csv), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// The blank line still counts toward source line numbers.
	if rows[1].Line != 4 {
		t.Errorf("Line = %d, want 4", rows[1].Line)
	}
}

func TestParseImportFileStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleCSV)...)

	rows, err := ParseImportFile(data, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].Fields.FirstName != "John" {
		t.Errorf("FirstName = %q, BOM not stripped", rows[0].Fields.FirstName)
	}
}

func TestParseImportFileEmpty(t *testing.T) {
	rows, err := ParseImportFile(nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestParseImportFileMissingColumns(t *testing.T) {
	csv := "First Name,Last Name,Email\n" +
		"John,Doe,john@example.com\n"

	_, err := ParseImportFile([]byte(csv), 0)
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "Phone Number") || !strings.Contains(err.Error(), "PAN Number") {
		t.Errorf("error should name the missing headers: %v", err)
	}
}

func TestParseImportFileRowLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("First Name,Last Name,Email,Phone Number,PAN Number\n")
	for i := 0; i < 5; i++ {
		b.WriteString("John,Doe,john@example.com,9876543210,ABCDE1234F\n")
	}

	_, err := ParseImportFile([]byte(b.String()), 3)
	if err == nil || !strings.Contains(err.Error(), "too many rows") {
		t.Fatalf("expected row limit error, got %v", err)
	}
}

func TestParseImportFileShortRow(t *testing.T) {
	csv := "First Name,Last Name,Email,Phone Number,PAN Number\n" +
		"John,Doe\n"

	rows, err := ParseImportFile([]byte(csv), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := rows[0].Fields
	if got.FirstName != "John" || got.Email != "" || got.PANNumber != "" {
		t.Errorf("short row should read missing columns as empty: %+v", got)
	}
}

// ----------------------------------------------------------------------------
// CleanCell Tests
// ----------------------------------------------------------------------------

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain value", "John", "John"},
		{"surrounding whitespace", "  John  ", "John"},
		{"excel formula prefix", `="9876543210"`, "9876543210"},
		{"bare equals prefix", "=John", "John"},
		{"stray double quotes", `"John"`, "John"},
		{"stray single quotes", "'John'", "John"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
