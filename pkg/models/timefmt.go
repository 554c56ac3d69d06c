package models

import (
	"fmt"
	"time"
)

// LocalDateTimeLayout is the minute-precision layout used by date/time entries
const LocalDateTimeLayout = "2006-01-02T15:04"

// FormatLocal renders t in local time, truncated to the minute
func FormatLocal(t time.Time) string {
	return t.In(time.Local).Format(LocalDateTimeLayout)
}

// ParseLocal parses a YYYY-MM-DDTHH:mm value in the local timezone
func ParseLocal(value string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalDateTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q, expected YYYY-MM-DDTHH:mm: %w", value, err)
	}
	return t, nil
}
