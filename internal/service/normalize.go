package service

import (
	"time"
)

// Store formats. Everything is normalized to UTC before it reaches the
// repositories; local-time conversion belongs to the presentation boundary.
const (
	storeDateFormat     = "2006-01-02"
	storeDateTimeFormat = "2006-01-02 15:04:05"
)

// Input layouts accepted from clients, tried in order.
var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	storeDateTimeFormat,
	storeDateFormat,
}

func parseClientTime(s string) (time.Time, bool) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeDate converts an ISO 8601 value to the store's calendar-date
// format. Unparseable input is passed through untouched; the store rejects
// it and the failure surfaces as a query error.
func normalizeDate(s string) string {
	t, ok := parseClientTime(s)
	if !ok {
		return s
	}
	return t.UTC().Format(storeDateFormat)
}

// normalizeDateTime converts an ISO 8601 value, offset or not, to UTC
// "2006-01-02 15:04:05". Unparseable input passes through untouched.
func normalizeDateTime(s string) string {
	t, ok := parseClientTime(s)
	if !ok {
		return s
	}
	return t.UTC().Format(storeDateTimeFormat)
}

func normalizeOptionalDateTime(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	normalized := normalizeDateTime(*s)
	return &normalized
}
