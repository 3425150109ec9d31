package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-raceresult/pkg/rrtypes"
)

func TestRegistrationIsActive(t *testing.T) {
	past := rrtypes.DateTimeOf(time.Now().UTC().Add(-24 * time.Hour))
	future := rrtypes.DateTimeOf(time.Now().UTC().Add(24 * time.Hour))

	tests := []struct {
		name     string
		reg      Registration
		expected bool
	}{
		{
			name:     "disabled",
			reg:      Registration{},
			expected: false,
		},
		{
			name:     "enabled without window",
			reg:      Registration{Enabled: true},
			expected: true,
		},
		{
			name:     "inside window",
			reg:      Registration{Enabled: true, EnabledFrom: past, EnabledTo: future},
			expected: true,
		},
		{
			name:     "not yet open",
			reg:      Registration{Enabled: true, EnabledFrom: future},
			expected: false,
		},
		{
			name:     "already closed",
			reg:      Registration{Enabled: true, EnabledTo: past},
			expected: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.reg.IsActive())
		})
	}
}
