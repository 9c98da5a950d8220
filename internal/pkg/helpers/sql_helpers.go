package helpers

import (
	"database/sql"
	"strings"
	"time"
)

// GetNullString converts a string pointer to sql.NullString.
// Nil and blank strings are stored as NULL.
func GetNullString(s *string) sql.NullString {
	if s == nil || strings.TrimSpace(*s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// GetNullTime converts a time pointer to sql.NullTime
func GetNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// StringPtr returns nil for NULL, otherwise a pointer to the value
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// OptionalString trims s and returns nil when nothing is left
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
