// Package types - Load case and norm types
package types

import (
	"github.com/shopspring/decimal"

	"unity-check/internal/errors"
)

// Norm identifies an allowable-load standard
type Norm string

const (
	NormA Norm = "A"
	NormB Norm = "B"
	NormC Norm = "C"
)

// String returns the string representation
func (n Norm) String() string {
	return string(n)
}

// Norm limits in kg. Process-wide constant table, never mutated.
var normLimits = map[Norm]decimal.Decimal{
	NormA: decimal.NewFromInt(500),
	NormB: decimal.NewFromInt(750),
	NormC: decimal.NewFromInt(1000),
}

// MaxMass returns the allowable maximum mass for the norm
func (n Norm) MaxMass() (decimal.Decimal, error) {
	max, ok := normLimits[n]
	if !ok {
		return decimal.Zero, errors.UnknownNorm(string(n))
	}
	return max, nil
}

// Known reports whether the norm is one of the recognized values
func (n Norm) Known() bool {
	_, ok := normLimits[n]
	return ok
}

// NormLimits returns a copy of the norm limit table
func NormLimits() map[Norm]decimal.Decimal {
	limits := make(map[Norm]decimal.Decimal, len(normLimits))
	for n, max := range normLimits {
		limits[n] = max
	}
	return limits
}

// Norms returns the recognized norms in display order
func Norms() []Norm {
	return []Norm{NormA, NormB, NormC}
}
