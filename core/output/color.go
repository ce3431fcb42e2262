// Package output renders evaluation results for humans and machines.
package output

import (
	"fmt"

	"unity-check/internal/errors"
)

// Color is an RGB display color
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the #rrggbb representation
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// UtilizationColor maps a 0-100 value onto the red-to-blue legend scale
func UtilizationColor(value int) (Color, error) {
	if value < 0 || value > 100 {
		return Color{}, errors.Newf(errors.TypeInput, "value (%d) must be between 0 - 100", value)
	}
	return Color{
		R: uint8(255 - value*255/100),
		G: 20,
		B: uint8(value * 255 / 100),
	}, nil
}
