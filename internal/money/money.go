// Package money centralizes decimal arithmetic for every monetary value the
// ledger touches. No other package in this module parses, adds, or renders a
// balance directly — they all go through here so quantization stays in one
// place.
//
// All amounts are quantized to two fractional digits at parse and render
// boundaries, matching the fixed-point semantics the on-disk tables use.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// twoPlaces is the number of fractional digits every monetary value is
// quantized to.
const twoPlaces = 2

func init() {
	// Matches the 12 significant-digit precision the original worker
	// configured for its decimal context; division is the only operation
	// here that can produce a non-terminating result.
	decimal.DivisionPrecision = 12
}

// Amount is a quantized, two-fractional-digit decimal value.
type Amount struct {
	d decimal.Decimal
}

// Zero is the additive identity, "0.00".
var Zero = Amount{d: decimal.Zero}

// Parse parses a decimal string (e.g. "123.45", "0", "-5.1") and quantizes it
// to two fractional digits. Returns an error for malformed input.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid monto %q: %w", s, err)
	}
	return Amount{d: d.Round(twoPlaces)}, nil
}

// MustParse parses s and panics on error; intended for static test fixtures
// and constants, never for request input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the amount with exactly two fractional digits, e.g. "7.00".
func (a Amount) String() string {
	return a.d.StringFixed(twoPlaces)
}

// Add returns a + b, quantized.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d).Round(twoPlaces)}
}

// Sub returns a - b, quantized.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d).Round(twoPlaces)}
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.d.LessThan(b.d)
}

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool {
	return a.d.IsPositive()
}

// IsZero reports whether a == 0.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}
