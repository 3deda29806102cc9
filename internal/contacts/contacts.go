// Package contacts maps spreadsheet rows onto the onboarding contact
// directory. Only the row shape matters: a header row naming the columns,
// then one contact per row.
package contacts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dgallion1/onboard/internal/domain"
)

// columnAliases maps normalized header cells onto contact fields.
var columnAliases = map[string]string{
	"name":         "name",
	"fullname":     "name",
	"contactname":  "name",
	"title":        "title",
	"role":         "title",
	"position":     "title",
	"jobtitle":     "title",
	"department":   "department",
	"dept":         "department",
	"team":         "department",
	"email":        "email",
	"emailaddress": "email",
	"phone":        "phone",
	"phonenumber":  "phone",
	"mobile":       "phone",
	"telephone":    "phone",
	"location":     "location",
	"office":       "location",
	"site":         "location",
}

// IsSupported reports whether the file can be imported.
func IsSupported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

// Parse reads contacts from a CSV or XLSX file.
func Parse(data []byte, filename string) ([]domain.Contact, error) {
	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = readCSV(data)
	case ".xlsx":
		rows, err = readXLSX(data)
	default:
		return nil, fmt.Errorf("unsupported contacts file extension: %s", ext)
	}
	if err != nil {
		return nil, err
	}
	return mapRows(rows), nil
}

// mapRows treats the first row as the header. Rows without a name are
// skipped; unknown columns are ignored.
func mapRows(rows [][]string) []domain.Contact {
	contacts := []domain.Contact{}
	if len(rows) == 0 {
		return contacts
	}

	fields := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		fields[i] = columnAliases[normalizeHeader(h)]
	}

	for _, row := range rows[1:] {
		var c domain.Contact
		for i, cell := range row {
			if i >= len(fields) {
				break
			}
			cell = strings.TrimSpace(cell)
			switch fields[i] {
			case "name":
				c.Name = cell
			case "title":
				c.Title = cell
			case "department":
				c.Department = cell
			case "email":
				c.Email = cell
			case "phone":
				c.Phone = cell
			case "location":
				c.Location = cell
			}
		}
		if c.Name == "" {
			continue
		}
		contacts = append(contacts, c)
	}
	return contacts
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
