package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts covers the publish date formats the catalog actually emits.
// Tried in order; the first successful parse wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"2 January 2006",
	"January 2006",
	"2006",
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// ParseDate parses a catalog date string into a time.Time.
// Returns nil when the string is empty or matches none of the known layouts.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// Normalize to noon UTC so date-only values don't shift across timezones.
			t = time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
			return &t
		}
	}
	return nil
}

// ParseYear extracts the first four-digit year from a free-text date string
// such as "1 July 1899" or "circa 1920". Returns 0 when no year is present.
func ParseYear(s string) int {
	match := yearPattern.FindString(s)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// CleanISBN strips separators and whitespace from an ISBN string and
// upper-cases the check digit. It performs no validity checking.
func CleanISBN(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(strings.TrimSpace(s))
}
