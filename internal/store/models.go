package store

import (
	"fmt"
	"time"
)

// WeightEntry represents a single recorded weight measurement
type WeightEntry struct {
	ID         int64     `db:"id" json:"id"` // creation time in unix milliseconds
	WeightKg   float64   `db:"weight_kg" json:"weight_kg"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	Notes      string    `db:"notes" json:"notes,omitempty"`
	Auto       bool      `db:"auto" json:"auto,omitempty"` // true for entries generated by the activity tracker
}

// Valid genders and activity levels for a profile.
var (
	Genders        = []string{"male", "female", "other"}
	ActivityLevels = []string{"sedentary", "light", "moderate", "very", "extra"}
)

// Profile represents the user's body profile used for derived health metrics
type Profile struct {
	HeightCm      float64 `db:"height_cm" json:"height_cm"`
	Age           int     `db:"age" json:"age"`
	Gender        string  `db:"gender" json:"gender"`
	ActivityLevel string  `db:"activity_level" json:"activity_level"`
}

// Validate checks all profile fields are present and within range.
func (p Profile) Validate() error {
	if p.HeightCm <= 0 || p.HeightCm > 300 {
		return fmt.Errorf("height must be between 1 and 300 cm, got %v", p.HeightCm)
	}
	if p.Age <= 0 || p.Age > 150 {
		return fmt.Errorf("age must be between 1 and 150 years, got %d", p.Age)
	}
	if !contains(Genders, p.Gender) {
		return fmt.Errorf("invalid gender %q", p.Gender)
	}
	if !contains(ActivityLevels, p.ActivityLevel) {
		return fmt.Errorf("invalid activity level %q", p.ActivityLevel)
	}
	return nil
}

// ActivitySession represents a completed tracking session queued for reporting
type ActivitySession struct {
	ID           string    `db:"id" json:"id"` // uuid
	RecordedAt   time.Time `db:"recorded_at" json:"recorded_at"`
	DistanceKm   float64   `db:"distance_km" json:"distance_km"`
	Steps        int       `db:"steps" json:"steps"`
	CaloriesKcal float64   `db:"calories_kcal" json:"calories_kcal"`
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
