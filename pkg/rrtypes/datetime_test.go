package rrtypes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DateTime
	}{
		{
			name:     "rfc3339 utc",
			input:    "2024-06-15T10:30:00Z",
			expected: NewDateTime(2024, time.June, 15, 10, 30, 0),
		},
		{
			name:     "rfc3339 offset",
			input:    "2024-06-15T10:30:00+02:00",
			expected: DateTimeOf(time.Date(2024, time.June, 15, 10, 30, 0, 0, time.FixedZone("", 2*60*60))),
		},
		{
			name:     "iso without offset",
			input:    "2024-06-15T10:30:00",
			expected: NewDateTime(2024, time.June, 15, 10, 30, 0),
		},
		{
			name:     "space separated",
			input:    "2024-06-15 10:30:00",
			expected: NewDateTime(2024, time.June, 15, 10, 30, 0),
		},
		{
			name:     "bare date",
			input:    "2024-06-15",
			expected: NewDateTime(2024, time.June, 15, 0, 0, 0),
		},
		{
			name:     "european with time",
			input:    "15.06.2024 10:30:00",
			expected: NewDateTime(2024, time.June, 15, 10, 30, 0),
		},
		{
			name:     "european hours only",
			input:    "15.06.2024 10",
			expected: NewDateTime(2024, time.June, 15, 10, 0, 0),
		},
		{
			name:     "european date only",
			input:    "15.06.2024",
			expected: NewDateTime(2024, time.June, 15, 0, 0, 0),
		},
		{
			name:     "empty",
			input:    "",
			expected: DateTime{},
		},
		{
			name:     "legacy zero sentinel space separated",
			input:    "1899-12-30 00:00:00",
			expected: DateTime{},
		},
		{
			name:     "legacy zero sentinel bare date",
			input:    "1899-12-30",
			expected: DateTime{},
		},
		{
			name:     "legacy zero sentinel european",
			input:    "30.12.1899",
			expected: DateTime{},
		},
		{
			name:     "legacy date with clock is kept",
			input:    "1899-12-30 08:15:00",
			expected: NewDateTime(1899, time.December, 30, 8, 15, 0),
		},
		{
			name:     "garbage",
			input:    "yesterday",
			expected: DateTime{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed := ParseDateTime(test.input)
			assert.True(t, test.expected.Equal(parsed), "got %v", parsed.Time())
			assert.Equal(t, test.expected.IsZero(), parsed.IsZero())
		})
	}
}

func TestDateTimeString(t *testing.T) {
	tests := []struct {
		name     string
		input    DateTime
		expected string
	}{
		{
			name:     "zero",
			input:    DateTime{},
			expected: "",
		},
		{
			name:     "legacy zero sentinel",
			input:    NewDateTime(1899, time.December, 30, 0, 0, 0),
			expected: "",
		},
		{
			name:     "legacy zero sentinel with offset",
			input:    DateTimeOf(time.Date(1899, time.December, 30, 0, 0, 0, 0, time.FixedZone("", 3600))),
			expected: "",
		},
		{
			name:     "utc midnight",
			input:    NewDateTime(2024, time.June, 15, 0, 0, 0),
			expected: "2024-06-15",
		},
		{
			name:     "utc with time",
			input:    NewDateTime(2024, time.June, 15, 10, 30, 0),
			expected: "2024-06-15 10:30:00",
		},
		{
			name:     "offset qualified",
			input:    DateTimeOf(time.Date(2024, time.June, 15, 10, 30, 0, 0, time.FixedZone("", 2*60*60))),
			expected: "2024-06-15T10:30:00+02:00",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.input.String())
		})
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	values := []DateTime{
		NewDateTime(2024, time.June, 15, 10, 30, 45),
		NewDateTime(2024, time.June, 15, 0, 0, 0),
		NewDateTime(1999, time.December, 31, 23, 59, 59),
		DateTimeOf(time.Date(2024, time.June, 15, 10, 30, 0, 0, time.FixedZone("", -5*60*60))),
	}
	for _, v := range values {
		assert.True(t, v.Equal(ParseDateTime(v.String())), "round trip of %q", v.String())
	}
}

func TestDateTimeJSON(t *testing.T) {
	type payload struct {
		Created DateTime `json:"Created"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"Created":"2024-06-15T10:30:00Z"}`), &p))
	assert.Equal(t, 10, p.Created.Time().Hour())

	out, err := json.Marshal(payload{Created: NewDateTime(1899, time.December, 30, 0, 0, 0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Created":""}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"Created":12345}`), &p))
	assert.True(t, p.Created.IsZero())
}
