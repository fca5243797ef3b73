package core

// csv.go turns uploaded CSV bytes into BatchRows.
//
// Import files come from spreadsheets exported by operators, so the parser
// tolerates the usual artifacts: UTF-8 BOM, invalid byte sequences, Excel
// formula prefixes (="value"), stray quotes, ragged column counts, and fully
// empty rows. Each field's column is accepted under two header aliases: the
// human form ("First Name") and the machine key ("firstName"). A missing
// value is an empty string, never a parse failure; the validator decides what
// empty means.

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxHeaderSearchRows is the maximum number of leading rows scanned for the
// header, to skip report titles and other preamble.
var MaxHeaderSearchRows = 20

// importColumn describes one expected column of the import file.
type importColumn struct {
	Key     string   // canonical field key (firstName, ...)
	Header  string   // template header form
	Aliases []string // accepted header spellings, lowercased
}

// importColumns lists the expected columns in template order.
var importColumns = []importColumn{
	{Key: "firstName", Header: "First Name", Aliases: []string{"first name", "firstname"}},
	{Key: "lastName", Header: "Last Name", Aliases: []string{"last name", "lastname"}},
	{Key: "email", Header: "Email", Aliases: []string{"email"}},
	{Key: "phoneNumber", Header: "Phone Number", Aliases: []string{"phone number", "phonenumber"}},
	{Key: "panNumber", Header: "PAN Number", Aliases: []string{"pan number", "pannumber"}},
}

// ParseImportFile parses CSV bytes into ordered BatchRows. maxRows caps the
// number of data rows (0 means no cap). An empty file yields zero rows; the
// reconciler turns that into its distinct empty-input failure.
func ParseImportFile(data []byte, maxRows int) ([]BatchRow, error) {
	data = stripBOM(data)
	data = sanitizeUTF8(data)

	records, err := parseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headerIdx, colIdx := findHeader(records)
	if headerIdx < 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missingColumns(records[0]), ", "))
	}

	dataRows := records[headerIdx+1:]

	var rows []BatchRow
	for i, record := range dataRows {
		if isEmptyRow(record) {
			continue
		}

		if maxRows > 0 && len(rows) >= maxRows {
			return nil, fmt.Errorf("file has too many rows (limit %d)", maxRows)
		}

		rows = append(rows, BatchRow{
			// 1-based source line: rows before the header, the header
			// itself, then this row.
			Line:   headerIdx + i + 2,
			Fields: rowFields(record, colIdx),
		})
	}

	return rows, nil
}

// rowFields extracts the five field values from a record using the header
// index. Columns beyond the record's length read as empty.
func rowFields(record []string, colIdx map[string]int) UserFields {
	get := func(key string) string {
		pos, ok := colIdx[key]
		if !ok || pos >= len(record) {
			return ""
		}
		return CleanCell(record[pos])
	}

	return UserFields{
		FirstName:   get("firstName"),
		LastName:    get("lastName"),
		Email:       get("email"),
		PhoneNumber: get("phoneNumber"),
		PANNumber:   get("panNumber"),
	}
}

// findHeader scans the leading rows for one containing every expected column
// under either alias. Returns the row index and the field-key -> position
// index, or -1 when no row matches.
func findHeader(records [][]string) (int, map[string]int) {
	maxRows := MaxHeaderSearchRows
	if len(records) < maxRows {
		maxRows = len(records)
	}

	for i := 0; i < maxRows; i++ {
		idx := indexHeader(records[i])
		if len(idx) == len(importColumns) {
			return i, idx
		}
	}
	return -1, nil
}

// indexHeader maps field keys to column positions for one candidate header
// row. Unknown columns are ignored; the first matching position wins.
func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(importColumns))
	for pos, h := range header {
		name := strings.ToLower(CleanCell(h))
		for _, col := range importColumns {
			if _, seen := idx[col.Key]; seen {
				continue
			}
			for _, alias := range col.Aliases {
				if name == alias {
					idx[col.Key] = pos
					break
				}
			}
		}
	}
	return idx
}

// missingColumns lists the expected headers absent from the given row.
func missingColumns(header []string) []string {
	idx := indexHeader(header)
	var missing []string
	for _, col := range importColumns {
		if _, ok := idx[col.Key]; !ok {
			missing = append(missing, col.Header)
		}
	}
	return missing
}

// CleanCell removes common CSV artifacts from a cell value: surrounding
// whitespace, Excel formula prefixes (="..."), and stray quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
