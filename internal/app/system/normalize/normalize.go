// internal/app/system/normalize/normalize.go

// Package normalize centralizes input normalization so stores and handlers
// agree on canonical forms (emails for unique lookups, display names for
// storage).
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are compared and
// indexed in this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name and collapses interior runs of whitespace to a
// single space.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Role lowercases and trims a role string for comparison against the
// association role vocabulary.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
