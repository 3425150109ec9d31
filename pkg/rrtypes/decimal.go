package rrtypes

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The vendor stores decimals as fixed-point with 4 places (factor 10000).
// The decoded form keeps arbitrary precision; the constants exist for
// callers that need to reason about the wire resolution.
const (
	DecimalPlaces = 4
	DecimalFactor = 10000
)

// Decimal is a fixed-point numeric wire value. The zero value is 0, which is
// also what every undecodable input degrades to; decoding never fails.
type Decimal struct {
	d decimal.Decimal
}

// DecimalOf wraps an existing decimal value.
func DecimalOf(d decimal.Decimal) Decimal {
	return Decimal{d: d}
}

// DecimalFromInt builds a Decimal from an integer.
func DecimalFromInt(n int64) Decimal {
	return Decimal{d: decimal.NewFromInt(n)}
}

// DecimalFromFloat builds a Decimal from a float, rounded to the vendor's 4
// decimal places.
func DecimalFromFloat(f float64) Decimal {
	return Decimal{d: decimal.NewFromFloat(f).Round(DecimalPlaces)}
}

// ParseDecimal decodes a wire decimal string. A comma decimal separator is
// accepted and replaced with a period before parsing. Empty and unparseable
// strings decode to 0, not an error.
func ParseDecimal(s string) Decimal {
	if s == "" {
		return Decimal{}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return Decimal{}
	}
	return Decimal{d: d}
}

// Decimal returns the underlying arbitrary-precision value.
func (d Decimal) Decimal() decimal.Decimal {
	return d.d
}

// Float64 converts to the vendor's numeric JSON representation. Precision
// beyond float64 is not preserved; the vendor's own wire resolution is 4
// decimal places.
func (d Decimal) Float64() float64 {
	return d.d.InexactFloat64()
}

// IsZero reports whether the value is 0.
func (d Decimal) IsZero() bool {
	return d.d.IsZero()
}

// Equal reports numeric equality.
func (d Decimal) Equal(other Decimal) bool {
	return d.d.Equal(other.d)
}

func (d Decimal) String() string {
	return d.d.String()
}

// MarshalJSON always emits a JSON number, never a string: the API expects
// numeric JSON fields.
func (d Decimal) MarshalJSON() ([]byte, error) {
	f := d.d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte(d.d.String()), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// UnmarshalJSON accepts numbers, strings (with period or comma separator)
// and null. Anything undecodable, including other JSON kinds, becomes 0.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*d = Decimal{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*d = Decimal{}
			return nil
		}
		*d = ParseDecimal(s)
		return nil
	}
	// Parsing the literal text keeps the exact value, free of binary-float
	// artifacts.
	v, err := decimal.NewFromString(string(data))
	if err != nil {
		*d = Decimal{}
		return nil
	}
	*d = Decimal{d: v}
	return nil
}
