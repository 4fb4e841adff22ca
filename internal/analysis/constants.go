package analysis

// Energy equivalence used to convert burned calories into an estimated
// weight change (1 kg of body fat ~ 7700 kcal).
const CaloriesPerKg = 7700.0

// DefaultBodyWeightKg is used for calorie estimates when no weight entry exists.
const DefaultBodyWeightKg = 70.0

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"very":      1.725,
	"extra":     1.9,
}

// METForSpeed returns the Metabolic Equivalent of Task for a movement speed
// in km/h, using fixed bands from slow walking up to running.
func METForSpeed(speedKmh float64) float64 {
	switch {
	case speedKmh < 3:
		return 2.0
	case speedKmh < 5:
		return 3.5
	case speedKmh < 7:
		return 5.0
	case speedKmh < 9:
		return 8.0
	case speedKmh < 12:
		return 11.0
	default:
		return 14.0
	}
}
