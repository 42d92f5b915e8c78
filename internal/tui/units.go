package tui

import (
	"fmt"

	"retirestrong/internal/config"
)

const (
	kgPerPound = 0.453592
	cmPerInch  = 2.54
)

// Units provides unit conversion and formatting based on user
// preferences. Stored values are always lbs and inches (the blob
// format); Units converts at the display and input edges only.
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatWeight formats a stored weight (lbs) in the user's preferred unit
func (u Units) FormatWeight(lbs float64) string {
	if u.cfg.WeightUnit == "kg" {
		return fmt.Sprintf("%.1f kg", lbs*kgPerPound)
	}
	return fmt.Sprintf("%.1f lbs", lbs)
}

// FormatLength formats a stored length (inches) in the user's preferred unit
func (u Units) FormatLength(inches float64) string {
	if u.cfg.LengthUnit == "cm" {
		return fmt.Sprintf("%.1f cm", inches*cmPerInch)
	}
	return fmt.Sprintf("%.1f in", inches)
}

// WeightLabel returns the weight unit label ("lbs" or "kg")
func (u Units) WeightLabel() string {
	if u.cfg.WeightUnit == "kg" {
		return "kg"
	}
	return "lbs"
}

// LengthLabel returns the length unit label ("in" or "cm")
func (u Units) LengthLabel() string {
	if u.cfg.LengthUnit == "cm" {
		return "cm"
	}
	return "in"
}

// StoredWeight converts a weight entered in the display unit to lbs
func (u Units) StoredWeight(display float64) float64 {
	if u.cfg.WeightUnit == "kg" {
		return display / kgPerPound
	}
	return display
}

// StoredLength converts a length entered in the display unit to inches
func (u Units) StoredLength(display float64) float64 {
	if u.cfg.LengthUnit == "cm" {
		return display / cmPerInch
	}
	return display
}

// ConvertWeightData converts stored chart values (lbs) to the display
// unit in one pass
func (u Units) ConvertWeightData(lbs []float64) []float64 {
	if u.cfg.WeightUnit != "kg" {
		return lbs
	}
	converted := make([]float64, len(lbs))
	for i, v := range lbs {
		converted[i] = v * kgPerPound
	}
	return converted
}
