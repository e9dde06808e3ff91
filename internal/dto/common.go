package dto

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDateOnly parses a yyyy-mm-dd string into a UTC midnight time.Time.
func ParseDateOnly(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want yyyy-mm-dd): %w", s, err)
	}
	return t, nil
}

// FormatDateOnly renders a time as yyyy-mm-dd.
func FormatDateOnly(t time.Time) string {
	return t.Format(DateLayout)
}
