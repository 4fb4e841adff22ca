package analysis

import (
	"math"

	"weightless/internal/store"
)

// WeightCategory classifies a BMI value.
type WeightCategory string

const (
	Underweight WeightCategory = "Underweight"
	Normal      WeightCategory = "Normal weight"
	Overweight  WeightCategory = "Overweight"
	Obese       WeightCategory = "Obese"
)

// BMI computes body mass index from weight in kg and height in cm.
// Returns 0 when height is unknown (zero or negative); callers treat 0 as
// "not computable", matching the profile-absent case.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BMICategory maps a BMI value onto the standard WHO categories.
func BMICategory(bmi float64) WeightCategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// TDEE computes total daily energy expenditure in kcal from the current
// weight and profile: BMR via Mifflin-St Jeor multiplied by the activity
// level factor. Returns ok=false when the profile's activity level is
// unknown or the BMI is not computable (absent or zero height).
func TDEE(weightKg float64, p store.Profile) (float64, bool) {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return 0, false
	}

	bmi := BMI(weightKg, p.HeightCm)
	if bmi == 0 || math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, false
	}

	bmr := 10*weightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	return bmr * mult, true
}
