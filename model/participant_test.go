package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-raceresult/pkg/rrtypes"
)

func TestParticipantDecode(t *testing.T) {
	payload := `{
		"ID": 100,
		"Bib": 15,
		"Firstname": "Ada",
		"Lastname": "Lovelace",
		"DateOfBirth": "10.12.1815",
		"PaidEntryFee": "12,50",
		"Created": "2024-06-01 08:30:00",
		"Modified": "1899-12-30 00:00:00",
		"Uploaded": ""
	}`

	var p Participant
	require.NoError(t, json.Unmarshal([]byte(payload), &p))

	assert.Equal(t, 15, p.Bib)
	assert.Equal(t, rrtypes.NewDate(1815, time.December, 10), p.DateOfBirth)
	assert.InDelta(t, 12.5, p.PaidEntryFee.Float64(), 1e-9)
	assert.Equal(t, rrtypes.NewDateTime(2024, time.June, 1, 8, 30, 0), p.Created)
	assert.True(t, p.Modified.IsZero())
	assert.True(t, p.Uploaded.IsZero())
}

func TestParticipantFullName(t *testing.T) {
	tests := []struct {
		name     string
		part     Participant
		expected string
	}{
		{
			name:     "both names",
			part:     Participant{Firstname: "Ada", Lastname: "Lovelace"},
			expected: "Ada Lovelace",
		},
		{
			name:     "lastname only",
			part:     Participant{Lastname: "Lovelace"},
			expected: "Lovelace",
		},
		{
			name:     "empty",
			part:     Participant{},
			expected: "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.part.FullName())
		})
	}
}

func TestParticipantFullAddress(t *testing.T) {
	tests := []struct {
		name     string
		part     Participant
		expected string
	}{
		{
			name: "all parts",
			part: Participant{
				Street:  "Baker Street 221b",
				ZIP:     "10115",
				City:    "Berlin",
				Country: "Germany",
			},
			expected: "Baker Street 221b, 10115 Berlin, Germany",
		},
		{
			name:     "city without zip",
			part:     Participant{City: "Berlin"},
			expected: "Berlin",
		},
		{
			name:     "empty",
			part:     Participant{},
			expected: "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.part.FullAddress())
		})
	}
}
