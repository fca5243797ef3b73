package core

// template.go writes the downloadable import template and the full-directory
// export. Both are CSV with the same column headers the import accepts.

import (
	"encoding/csv"
	"io"
	"time"
)

// sampleRows are the example records shipped in the import template.
var sampleRows = [][]string{
	{"John", "Doe", "john.doe@example.com", "9876543210", "ABCDE1234F"},
	{"Jane", "Smith", "jane.smith@example.com", "8765432109", "FGHIJ5678K"},
}

// ImportHeaders returns the template's column headers in order.
func ImportHeaders() []string {
	headers := make([]string, len(importColumns))
	for i, col := range importColumns {
		headers[i] = col.Header
	}
	return headers
}

// WriteTemplate writes the sample import file: the expected headers plus two
// example rows for operator convenience.
func WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ImportHeaders()); err != nil {
		return err
	}
	for _, row := range sampleRows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteExport writes the whole directory as CSV, import headers first, with
// the record timestamps appended.
func WriteExport(w io.Writer, users []User) error {
	cw := csv.NewWriter(w)

	header := append(ImportHeaders(), "Created At", "Updated At")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, u := range users {
		record := []string{
			u.FirstName,
			u.LastName,
			u.Email,
			u.PhoneNumber,
			u.PANNumber,
			u.CreatedAt.Format(time.RFC3339),
			u.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
