package tui

import (
	"fmt"

	"weightless/internal/config"
)

const kgPerLb = 0.45359237

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatWeight formats a weight in kilograms to the user's preferred unit
func (u Units) FormatWeight(kg float64) string {
	if u.IsPounds() {
		return fmt.Sprintf("%.1f lb", kg/kgPerLb)
	}
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatWeightValue returns just the numeric weight (no unit label)
func (u Units) FormatWeightValue(kg float64) string {
	if u.IsPounds() {
		return fmt.Sprintf("%.1f", kg/kgPerLb)
	}
	return fmt.Sprintf("%.1f", kg)
}

// FormatDelta formats a signed weight change with an explicit sign
func (u Units) FormatDelta(kg float64) string {
	value := kg
	if u.IsPounds() {
		value = kg / kgPerLb
	}
	return fmt.Sprintf("%+.1f %s", value, u.WeightLabel())
}

// ToKg converts a value entered in the display unit back to kilograms
func (u Units) ToKg(value float64) float64 {
	if u.IsPounds() {
		return value * kgPerLb
	}
	return value
}

// WeightValue converts kilograms into the display unit for charting
func (u Units) WeightValue(kg float64) float64 {
	if u.IsPounds() {
		return kg / kgPerLb
	}
	return kg
}

// WeightLabel returns the short unit label ("kg" or "lb")
func (u Units) WeightLabel() string {
	if u.IsPounds() {
		return "lb"
	}
	return "kg"
}

// FormatDistance formats a distance in kilometers
func (u Units) FormatDistance(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

// IsPounds returns true if the weight unit is pounds
func (u Units) IsPounds() bool {
	return u.cfg.WeightUnit == "lb"
}
