package rrtypes

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "period separator",
			input:    "123.4567",
			expected: "123.4567",
		},
		{
			name:     "comma separator",
			input:    "123,45",
			expected: "123.45",
		},
		{
			name:     "integer",
			input:    "100",
			expected: "100",
		},
		{
			name:     "negative",
			input:    "-0,5",
			expected: "-0.5",
		},
		{
			name:     "empty",
			input:    "",
			expected: "0",
		},
		{
			name:     "garbage",
			input:    "garbage",
			expected: "0",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(test.expected)
			require.NoError(t, err)
			assert.True(t, ParseDecimal(test.input).Decimal().Equal(expected))
		})
	}
}

func TestDecimalUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:     "number",
			payload:  `{"Fee":123.4567}`,
			expected: "123.4567",
		},
		{
			name:     "integer number",
			payload:  `{"Fee":100}`,
			expected: "100",
		},
		{
			name:     "string with comma",
			payload:  `{"Fee":"123,45"}`,
			expected: "123.45",
		},
		{
			name:     "null",
			payload:  `{"Fee":null}`,
			expected: "0",
		},
		{
			name:     "absent",
			payload:  `{}`,
			expected: "0",
		},
		{
			name:     "garbage string",
			payload:  `{"Fee":"garbage"}`,
			expected: "0",
		},
		{
			name:     "wrong kind",
			payload:  `{"Fee":true}`,
			expected: "0",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out struct {
				Fee Decimal `json:"Fee"`
			}
			require.NoError(t, json.Unmarshal([]byte(test.payload), &out))
			assert.Equal(t, test.expected, out.Fee.String())
		})
	}
}

func TestDecimalMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Fee Decimal `json:"Fee"`
	}{Fee: DecimalFromFloat(12.5)})
	require.NoError(t, err)
	// Always a JSON number, never a string.
	assert.Equal(t, `{"Fee":12.5}`, string(out))
}

func TestDecimalFloat64(t *testing.T) {
	assert.Equal(t, 12.5, ParseDecimal("12,5").Float64())
	assert.Equal(t, 0.0, Decimal{}.Float64())
}

func TestDecimalFromFloatRounds(t *testing.T) {
	assert.Equal(t, "1.2346", DecimalFromFloat(1.23456).String())
	assert.Equal(t, "100", DecimalFromInt(100).String())
}
