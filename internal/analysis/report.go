package analysis

import (
	"time"

	"weightless/internal/store"
)

// Report summarizes the trailing seven calendar days.
type Report struct {
	StartKg    float64
	EndKg      float64
	ChangeKg   float64
	AverageKg  float64
	Activities int     // entries generated by the activity tracker
	Trend      string  // "decreasing" or "increasing"
	BMI        float64 // 0 when no profile is stored
}

// WeeklyReport builds a report over entries recorded in the seven days
// before now. Returns ok=false when no entries fall inside the window.
// The profile may be nil, in which case the BMI field stays 0.
func WeeklyReport(entries []store.WeightEntry, profile *store.Profile, now time.Time) (*Report, bool) {
	week := FilterSince(entries, now.AddDate(0, 0, -7))
	if len(week) == 0 {
		return nil, false
	}

	r := &Report{
		StartKg: week[len(week)-1].WeightKg, // oldest in window
		EndKg:   week[0].WeightKg,           // newest
	}
	r.ChangeKg = r.EndKg - r.StartKg

	var sum float64
	for _, e := range week {
		sum += e.WeightKg
		if e.Auto {
			r.Activities++
		}
	}
	r.AverageKg = sum / float64(len(week))

	if r.ChangeKg < 0 {
		r.Trend = "decreasing"
	} else {
		r.Trend = "increasing"
	}

	if profile != nil {
		r.BMI = BMI(r.EndKg, profile.HeightCm)
	}

	return r, true
}
