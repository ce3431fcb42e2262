// Package evaluator implements the unity-check evaluation pipeline.
package evaluator

import (
	"context"

	"github.com/shopspring/decimal"

	"unity-check/internal/errors"
)

// Strategy selects the mass-computation path for a call
type Strategy string

const (
	// StrategyLocal computes mass in-process (volume * density)
	StrategyLocal Strategy = "local"

	// StrategyExternal delegates mass computation to the spreadsheet service
	StrategyExternal Strategy = "external"
)

// ParseStrategy validates a strategy name
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyLocal, StrategyExternal:
		return Strategy(s), nil
	case "":
		return StrategyLocal, nil
	default:
		return "", errors.Newf(errors.TypeInput, "unknown strategy: %q", s)
	}
}

// MassCalculator computes a mass from a volume and a density.
// Both computation paths implement this contract and must agree numerically
// for equivalent inputs.
type MassCalculator interface {
	// Name returns the calculator identifier
	Name() string

	// Mass returns the computed mass in kg
	Mass(ctx context.Context, volume, density decimal.Decimal) (decimal.Decimal, error)
}

// LocalCalculator is the in-process mass computation path
type LocalCalculator struct{}

// Name returns the calculator identifier
func (LocalCalculator) Name() string {
	return "local"
}

// Mass computes volume * density
func (LocalCalculator) Mass(_ context.Context, volume, density decimal.Decimal) (decimal.Decimal, error) {
	return volume.Mul(density), nil
}
