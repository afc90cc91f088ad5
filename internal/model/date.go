package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// DateLayout is the stored calendar-day format.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time component, stored in UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date from its parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// LocalDateOf returns the calendar day of t in the local time zone.
func LocalDateOf(t time.Time) Date {
	return DateOf(t.In(time.Local))
}

// LocalMidnight returns the start of d in the local time zone.
func (d Date) LocalMidnight() time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
}

// ParseDate parses a yyyy-MM-dd string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// SameMonth reports whether d falls in the calendar month of t.
func (d Date) SameMonth(t time.Time) bool {
	y, m, _ := t.Date()
	return d.Year() == y && d.Month() == m
}

// MonthStart returns the first day of d's month.
func (d Date) MonthStart() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// MarshalJSON writes the date as "yyyy-MM-dd".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "yyyy-MM-dd" and RFC 3339 timestamps. Any other
// value leaves the zero Date so one bad entry cannot drop a whole document.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		slog.Warn("Ignoring unreadable stored date", "value", string(data))
		*d = Date{}
		return nil
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if parsed, err := ParseDate(s); err == nil {
		*d = parsed
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		slog.Warn("Ignoring unreadable stored date", "value", s)
		*d = Date{}
		return nil
	}
	*d = DateOf(t)
	return nil
}
