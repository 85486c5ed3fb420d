package view

import (
	"strings"
	"time"
)

// NotProvided is the fixed placeholder for missing or unparseable display
// values.
const NotProvided = "Not provided"

// PlaceholderInitials is shown when no patient name is available.
const PlaceholderInitials = "PN"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders an ISO-ish date string as a long-form US date
// ("January 2, 2006"). Empty or unparseable input yields the placeholder
// rather than an error.
func FormatDate(value string) string {
	if value == "" {
		return NotProvided
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return NotProvided
}

// Initials derives the display initials from a full name: first and last name
// initial uppercased, one initial for single-word names, and a fixed
// placeholder when the name is empty.
func Initials(fullName string) string {
	names := strings.Fields(fullName)
	if len(names) == 0 {
		return PlaceholderInitials
	}
	if len(names) == 1 {
		return strings.ToUpper(firstRune(names[0]))
	}
	return strings.ToUpper(firstRune(names[0]) + firstRune(names[len(names)-1]))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
