package normalize

import (
	"testing"
	"time"
)

func TestToISOString_ValidInputs(t *testing.T) {
	ts := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	got := ToISOString(ts)
	if got == nil {
		t.Fatal("expected non-nil for time.Time input")
	}
	if *got != "2024-06-15T10:30:00.000Z" {
		t.Errorf("expected 2024-06-15T10:30:00.000Z, got %s", *got)
	}

	got = ToISOString(&ts)
	if got == nil || *got != "2024-06-15T10:30:00.000Z" {
		t.Error("expected *time.Time input to normalize identically")
	}

	got = ToISOString("2024-06-15")
	if got == nil {
		t.Fatal("expected non-nil for date-only string")
	}
	if *got != "2024-06-15T00:00:00.000Z" {
		t.Errorf("expected midnight UTC for date-only string, got %s", *got)
	}

	got = ToISOString("2024-06-15T10:30:00Z")
	if got == nil || *got != "2024-06-15T10:30:00.000Z" {
		t.Error("expected RFC3339 string to parse")
	}
}

func TestToISOString_InvalidInputs(t *testing.T) {
	cases := []interface{}{
		nil,
		"",
		"   ",
		"not-a-date",
		"2024-13-45",
		(*time.Time)(nil),
		(*string)(nil),
		time.Time{},
		struct{}{},
	}
	for _, v := range cases {
		if got := ToISOString(v); got != nil {
			t.Errorf("expected nil for %#v, got %s", v, *got)
		}
	}
}

func TestAge_BirthdayBoundary(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// Birthday tomorrow: one less than a full year count.
	age := Age("2000-06-16", now)
	if age == nil {
		t.Fatal("expected non-nil age")
	}
	if *age != 23 {
		t.Errorf("expected age 23 before birthday, got %d", *age)
	}

	// Birthday today counts.
	age = Age("2000-06-15", now)
	if age == nil || *age != 24 {
		t.Errorf("expected age 24 on birthday, got %v", age)
	}

	// Earlier month.
	age = Age("2000-01-01", now)
	if age == nil || *age != 24 {
		t.Errorf("expected age 24 for January birth, got %v", age)
	}

	// Later month.
	age = Age("2000-12-31", now)
	if age == nil || *age != 23 {
		t.Errorf("expected age 23 for December birth, got %v", age)
	}
}

func TestAge_InvalidDOB(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := Age(nil, now); got != nil {
		t.Errorf("expected nil age for nil dob, got %d", *got)
	}
	if got := Age("garbage", now); got != nil {
		t.Errorf("expected nil age for unparseable dob, got %d", *got)
	}
}

func TestParseDate_EpochMillis(t *testing.T) {
	ms := int64(1718448600000) // 2024-06-15T10:50:00Z
	got, ok := ParseDate(ms)
	if !ok {
		t.Fatal("expected epoch millis to parse")
	}
	if got.UTC().Year() != 2024 || got.UTC().Month() != time.June {
		t.Errorf("unexpected parsed time: %v", got.UTC())
	}
}
