// Package types implements special types for FinGoal.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date is a calendar date, stored as midnight UTC.
type Date time.Time

var rfc3339Date = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in RFC3339 full-date format ("2006-01-02") or
// a full RFC3339 timestamp and returns the Date value it represents.
func ParseDate(s string) (Date, error) {
	pattern := time.RFC3339
	if rfc3339Date.MatchString(s) {
		pattern = time.DateOnly
	}

	t, err := time.Parse(pattern, s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	t := time.Time(d)
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of d.String().
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Until returns the duration from t until the start of the date.
// It is negative for dates in the past.
func (d Date) Until(t time.Time) time.Duration {
	return time.Time(d).Sub(t)
}

// Equal reports whether d and e represent the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}
