// Package config holds the canonical column table for employee CSV files and
// the resolver that maps a file's header row onto it.
package config

import (
	"fmt"
	"strings"
)

// Field identifies one canonical column of an employee record.
type Field string

const (
	FieldID         Field = "id"
	FieldEmail      Field = "email"
	FieldName       Field = "name"
	FieldDepartment Field = "department"
	FieldHours      Field = "hours_worked"
	FieldRate       Field = "hourly_rate"
)

// fieldAliases maps each canonical field to the header spellings it accepts.
// Matching is a case-sensitive exact comparison; the canonical name is always
// included in its own alias set.
var fieldAliases = map[Field][]string{
	FieldID:         {"id"},
	FieldEmail:      {"email"},
	FieldName:       {"name"},
	FieldDepartment: {"department"},
	FieldHours:      {"hours_worked", "hours"},
	FieldRate:       {"hourly_rate", "rate", "salary"},
}

// Fields returns the canonical fields every employee CSV must provide.
func Fields() []Field {
	return []Field{FieldID, FieldEmail, FieldName, FieldDepartment, FieldHours, FieldRate}
}

// HeaderError reports a header row that cannot be mapped to the canonical
// column table: a required field is missing, or two columns claim it.
type HeaderError struct {
	Field  Field
	Reason string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("header error for column %q: %s", e.Field, e.Reason)
}

// ResolveColumns maps a header row to canonical field indices. Header cells
// are whitespace-trimmed before comparison. Column order in the header is
// irrelevant; each required field must match exactly one column.
func ResolveColumns(header []string) (map[Field]int, error) {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = strings.TrimSpace(h)
	}

	indices := make(map[Field]int, len(fieldAliases))
	for field, aliases := range fieldAliases {
		found := -1
		for i, cell := range cells {
			if !matchesAlias(cell, aliases) {
				continue
			}
			if found >= 0 {
				return nil, &HeaderError{
					Field:  field,
					Reason: fmt.Sprintf("columns %d and %d both match", found, i),
				}
			}
			found = i
		}
		if found < 0 {
			return nil, &HeaderError{
				Field:  field,
				Reason: fmt.Sprintf("no column matches any of %s", strings.Join(aliases, ", ")),
			}
		}
		indices[field] = found
	}
	return indices, nil
}

func matchesAlias(cell string, aliases []string) bool {
	for _, alias := range aliases {
		if cell == alias {
			return true
		}
	}
	return false
}
