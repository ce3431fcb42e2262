package types

import (
	"github.com/shopspring/decimal"

	"unity-check/internal/errors"
)

// LoadCase is one unit of input to the unity check
type LoadCase struct {
	// Name is an optional display label (e.g. "Case 1")
	Name string `json:"name,omitempty"`

	// Volume is the case volume in m³ (must be positive)
	Volume decimal.Decimal `json:"volume"`

	// Density is the material density in kg/m³ (must be non-negative)
	Density decimal.Decimal `json:"density"`

	// Norm selects the allowable-maximum lookup
	Norm Norm `json:"norm"`
}

// Validate checks the load case against its invariants
func (c LoadCase) Validate() error {
	if !c.Volume.IsPositive() {
		return errors.Input("volume must be positive").WithContext("volume", c.Volume.String())
	}
	if c.Density.IsNegative() {
		return errors.Input("density must be non-negative").WithContext("density", c.Density.String())
	}
	if !c.Norm.Known() {
		return errors.UnknownNorm(string(c.Norm))
	}
	return nil
}
