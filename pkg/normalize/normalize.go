// Package normalize converts the heterogeneous date-like values found in
// legacy patient records into canonical forms. Inputs that cannot be
// interpreted as a date normalize to nil; nothing here ever panics.
package normalize

import (
	"strings"
	"time"
)

// ISOLayout is the canonical timestamp format exposed to renderers.
const ISOLayout = "2006-01-02T15:04:05.000Z"

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ParseDate interprets a date-like value. Supported inputs are time.Time,
// *time.Time, string (several common layouts) and epoch milliseconds as
// int64/float64. The second return value reports whether the input parsed.
func ParseDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d, true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range parseLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case *string:
		if d == nil {
			return time.Time{}, false
		}
		return ParseDate(*d)
	case int64:
		return time.UnixMilli(d), true
	case float64:
		return time.UnixMilli(int64(d)), true
	default:
		return time.Time{}, false
	}
}

// ToISOString returns the canonical ISO-8601 UTC string for any value that
// parses to a valid date, and nil otherwise.
func ToISOString(v interface{}) *string {
	t, ok := ParseDate(v)
	if !ok {
		return nil
	}
	s := t.UTC().Format(ISOLayout)
	return &s
}

// Age returns the whole number of years between a date of birth and now,
// using UTC calendar fields. The count is decremented by one when the
// current month/day falls before the birth month/day (the birthday has not
// happened yet this year). Returns nil when dob is absent or unparseable.
func Age(dob interface{}, now time.Time) *int {
	birth, ok := ParseDate(dob)
	if !ok {
		return nil
	}
	b := birth.UTC()
	n := now.UTC()

	years := n.Year() - b.Year()
	if n.Month() < b.Month() || (n.Month() == b.Month() && n.Day() < b.Day()) {
		years--
	}
	return &years
}
