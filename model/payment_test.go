package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-raceresult/pkg/rrtypes"
)

func TestVoucherIsValid(t *testing.T) {
	past := rrtypes.DateTimeOf(time.Now().UTC().Add(-24 * time.Hour))
	future := rrtypes.DateTimeOf(time.Now().UTC().Add(24 * time.Hour))

	tests := []struct {
		name     string
		voucher  Voucher
		expected bool
	}{
		{
			name:     "no restrictions",
			voucher:  Voucher{},
			expected: true,
		},
		{
			name:     "inside window",
			voucher:  Voucher{ValidFrom: past, ValidUntil: future},
			expected: true,
		},
		{
			name:     "not yet valid",
			voucher:  Voucher{ValidFrom: future},
			expected: false,
		},
		{
			name:     "expired",
			voucher:  Voucher{ValidUntil: past},
			expected: false,
		},
		{
			name:     "uses left",
			voucher:  Voucher{Reusable: 3, UseCounter: 2},
			expected: true,
		},
		{
			name:     "used up",
			voucher:  Voucher{Reusable: 3, UseCounter: 3},
			expected: false,
		},
		{
			name:     "unlimited reuse",
			voucher:  Voucher{Reusable: 0, UseCounter: 10},
			expected: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.voucher.IsValid())
		})
	}
}
