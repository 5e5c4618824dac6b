package repository

import "strings"

// lowered normalizes a search term for case-insensitive LIKE matching
// against LOWER(...) columns.
func lowered(q string) string {
	return strings.ToLower(q)
}
