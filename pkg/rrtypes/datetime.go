package rrtypes

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const (
	dateTimeWire     = "2006-01-02 15:04:05"
	dateTimeWireNoTZ = "2006-01-02T15:04:05"
)

// DateTime is a point in time, optionally carrying a zone offset. The zero
// value means "no datetime". Values in any location other than time.UTC are
// considered offset-qualified and encode as RFC3339; UTC values take the
// vendor's plain formats. Go has no naive datetime, so UTC fills that role
// for wire strings that carry no offset.
type DateTime struct {
	t time.Time
}

// NewDateTime builds a DateTime in UTC from components.
func NewDateTime(year int, month time.Month, day, hour, min, sec int) DateTime {
	return DateTime{t: time.Date(year, month, day, hour, min, sec, 0, time.UTC)}
}

// DateTimeOf wraps an existing time value unchanged. Unlike DateOf no
// sentinel collapsing happens here; the sentinel check applies on encode.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{t: t}
}

// ParseDateTime decodes a wire datetime, trying the vendor's formats in
// order: RFC3339 (with or without offset), "YYYY-MM-DD HH:MM:SS" as UTC,
// bare "YYYY-MM-DD" as UTC midnight, then European "DD.MM.YYYY[ HH:MM:SS]"
// as UTC. The first format that parses wins; if none do, the result is the
// zero DateTime. The legacy zero sentinel (1899-12-30 00:00:00) decodes to
// the zero DateTime in any of these formats, the same rule Date applies.
// ParseDateTime never fails.
func ParseDateTime(s string) DateTime {
	if s == "" {
		return DateTime{}
	}
	if strings.Contains(s, "T") {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return dateTimeFrom(t)
		}
		if t, err := time.ParseInLocation(dateTimeWireNoTZ, s, time.UTC); err == nil {
			return dateTimeFrom(t)
		}
	}
	if len(s) == 19 && strings.Count(s, " ") == 1 {
		if t, err := time.ParseInLocation(dateTimeWire, s, time.UTC); err == nil {
			return dateTimeFrom(t)
		}
	}
	if len(s) == 10 {
		if t, err := time.ParseInLocation(dateWire, s, time.UTC); err == nil {
			return dateTimeFrom(t)
		}
	}
	if strings.Contains(s, ".") {
		if t, ok := parseEuropeanDateTime(s); ok {
			return dateTimeFrom(t)
		}
	}
	return DateTime{}
}

// dateTimeFrom collapses the legacy zero sentinel to the zero DateTime.
func dateTimeFrom(t time.Time) DateTime {
	if isSentinelDateTime(t) {
		return DateTime{}
	}
	return DateTime{t: t}
}

// parseEuropeanDateTime parses DD.MM.YYYY with an optional HH:MM:SS part;
// missing minutes and seconds default to zero.
func parseEuropeanDateTime(s string) (time.Time, bool) {
	datePart, timePart, hasTime := strings.Cut(s, " ")
	d, ok := parseEuropeanDate(datePart)
	if !ok {
		return time.Time{}, false
	}
	if !hasTime {
		return d, true
	}
	clock := [3]int{} // hour, minute, second; missing parts stay zero
	for i, part := range strings.SplitN(timePart, ":", 3) {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return time.Time{}, false
		}
		clock[i] = n
	}
	if clock[0] > 23 || clock[1] > 59 || clock[2] > 59 {
		return time.Time{}, false
	}
	return d.Add(time.Duration(clock[0])*time.Hour +
		time.Duration(clock[1])*time.Minute +
		time.Duration(clock[2])*time.Second), true
}

// IsZero reports whether the datetime is absent.
func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the wrapped time value.
func (d DateTime) Time() time.Time {
	return d.t
}

// Equal reports whether two datetimes represent the same instant.
func (d DateTime) Equal(other DateTime) bool {
	return d.t.Equal(other.t)
}

// String encodes the datetime for the wire. The zero value and the legacy
// zero sentinel (1899-12-30 00:00:00, in any zone) encode as an empty
// string. Offset-qualified values encode as RFC3339; UTC values encode
// date-only at exact midnight and as "YYYY-MM-DD HH:MM:SS" otherwise.
func (d DateTime) String() string {
	if d.IsZero() || isSentinelDateTime(d.t) {
		return ""
	}
	if d.t.Location() != time.UTC {
		return d.t.Format(time.RFC3339)
	}
	if h, m, s := d.t.Clock(); h == 0 && m == 0 && s == 0 {
		return d.t.Format(dateWire)
	}
	return d.t.Format(dateTimeWire)
}

func isSentinelDateTime(t time.Time) bool {
	h, m, s := t.Clock()
	return t.Year() == 1899 && t.Month() == time.December && t.Day() == 30 &&
		h == 0 && m == 0 && s == 0
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = DateTime{}
		return nil
	}
	*d = ParseDateTime(s)
	return nil
}
