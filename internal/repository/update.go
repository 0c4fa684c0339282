package repository

import (
	"fmt"
	"sort"
	"strings"
)

// buildUpdateSet renders a SET clause from the supplied field map with
// numbered placeholders starting at 1. Columns are sorted so the generated
// SQL is deterministic.
func buildUpdateSet(fields map[string]any) (string, []any) {
	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	assignments := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s=$%d", col, i+1)
		args[i] = fields[col]
	}
	return strings.Join(assignments, ", "), args
}
