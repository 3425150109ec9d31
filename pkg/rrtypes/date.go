// Package rrtypes implements the scalar wire formats of the RaceResult API:
// dates, datetimes and decimals, including the legacy encodings and zero-value
// sentinels the vendor still emits. Decoding never fails; malformed input
// degrades to the type's zero value, which is what callers across the client
// rely on when the API returns inconsistent legacy data.
package rrtypes

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const dateWire = "2006-01-02"

// Date is a calendar date without time of day or zone. The zero value means
// "no date": empty strings and both vendor zero-date sentinels (the
// spreadsheet epoch 1899-12-30 and the runtime zero 0001-01-01) decode to it.
type Date struct {
	t time.Time
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates t to its calendar date. Sentinel dates collapse to the
// zero Date.
func DateOf(t time.Time) Date {
	if t.IsZero() || isSentinelDate(t) {
		return Date{}
	}
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate decodes a wire date. Accepted encodings are ISO (YYYY-MM-DD) and
// European (DD.MM.YYYY). Empty, sentinel and unparseable input all yield the
// zero Date; ParseDate never fails.
func ParseDate(s string) Date {
	if s == "" {
		return Date{}
	}
	if t, err := time.Parse(dateWire, s); err == nil {
		return DateOf(t)
	}
	if strings.Contains(s, ".") {
		if t, ok := parseEuropeanDate(s); ok {
			return DateOf(t)
		}
	}
	return Date{}
}

// parseEuropeanDate parses DD.MM.YYYY with or without leading zeros.
func parseEuropeanDate(s string) (time.Time, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, the vendor treats them
	// as invalid.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func isSentinelDate(t time.Time) bool {
	if t.Year() == 1899 && t.Month() == time.December && t.Day() == 30 {
		return true
	}
	return t.Year() == 1 && t.Month() == time.January && t.Day() == 1
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date as a UTC midnight time.Time.
func (d Date) Time() time.Time {
	return d.t
}

// Equal reports whether two dates are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// String encodes the date for the wire: ISO YYYY-MM-DD, or an empty string
// for the zero Date. European format and sentinel dates are never emitted.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateWire)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// null or a non-string value, treated as absent.
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}
