package postgres

import (
	"database/sql"
	"time"
)

// Store formats. Dates and timestamps are kept in UTC; callers convert at the
// presentation boundary only.
const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04:05"
)

func formatDate(t time.Time) string {
	return t.UTC().Format(dateFormat)
}

func formatDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeFormat)
}

func nullableDateTime(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := formatDateTime(t.Time)
	return &s
}
