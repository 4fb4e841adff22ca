package analysis

import "weightless/internal/store"

// predictWindow is how many recent entries feed the extrapolation.
const predictWindow = 7

// Predict extrapolates the current weight horizonDays into the future from
// the average day-over-day change across the 7 most recent entries (newest
// first). Returns ok=false with fewer than 7 entries.
//
// The entries are assumed to be one calendar day apart; irregular intervals
// are not corrected for. This is a known approximation, kept as-is.
func Predict(entries []store.WeightEntry, horizonDays int) (float64, bool) {
	if len(entries) < predictWindow {
		return 0, false
	}

	recent := entries[:predictWindow]
	var sum float64
	for i := 0; i < len(recent)-1; i++ {
		sum += recent[i].WeightKg - recent[i+1].WeightKg
	}
	avgDailyChange := sum / float64(len(recent)-1)

	return entries[0].WeightKg + avgDailyChange*float64(horizonDays), true
}
