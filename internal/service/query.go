// Package service coordinates the store, analysis and tracker packages
// behind the interfaces the TUI and CLI consume.
package service

import (
	"errors"
	"time"

	"weightless/internal/analysis"
	"weightless/internal/store"
)

// Prediction horizons offered to the user, in days.
var PredictionHorizons = []int{30, 60, 90}

// QueryService provides read-only queries for the TUI
type QueryService struct {
	store *store.Store
}

// NewQueryService creates a new query service
func NewQueryService(s *store.Store) *QueryService {
	return &QueryService{store: s}
}

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	Totals    analysis.Totals
	HasTotals bool

	// Derived health metrics; zero when the profile is missing
	BMI         float64
	BMICategory analysis.WeightCategory
	TDEE        float64
	HasTDEE     bool

	// Recent entries, newest first
	RecentEntries []store.WeightEntry

	// Chart series, oldest first
	ChartWeights []float64

	// Lifetime activity totals
	ActivityDistanceKm float64
	ActivitySteps      int
	ActivityCalories   float64
}

// dashboardRecentLimit caps the entry list shown on the dashboard.
const dashboardRecentLimit = 10

// GetDashboardData fetches all data needed for the dashboard
func (q *QueryService) GetDashboardData() (*DashboardData, error) {
	entries, err := q.store.ListWeightEntries()
	if err != nil {
		return nil, err
	}

	data := &DashboardData{}
	data.Totals, data.HasTotals = analysis.ComputeTotals(entries)

	if len(entries) > dashboardRecentLimit {
		data.RecentEntries = entries[:dashboardRecentLimit]
	} else {
		data.RecentEntries = entries
	}

	// Chart wants oldest first
	data.ChartWeights = make([]float64, len(entries))
	for i, e := range entries {
		data.ChartWeights[len(entries)-1-i] = e.WeightKg
	}

	profile, err := q.store.GetProfile()
	if err != nil && !errors.Is(err, store.ErrNoProfile) {
		return nil, err
	}
	if profile != nil && data.HasTotals {
		data.BMI = analysis.BMI(data.Totals.CurrentKg, profile.HeightCm)
		data.BMICategory = analysis.BMICategory(data.BMI)
		data.TDEE, data.HasTDEE = analysis.TDEE(data.Totals.CurrentKg, *profile)
	}

	data.ActivityDistanceKm, data.ActivitySteps, data.ActivityCalories, err = q.store.SessionTotals()
	if err != nil {
		return nil, err
	}

	return data, nil
}

// TrendsData contains weekly and monthly aggregates for the trends screen
type TrendsData struct {
	Weekly  []analysis.WeeklyAverage
	Monthly []analysis.MonthlyAverage
	// Trend is the fitted line over the weekly averages, same length
	Trend []float64
	Stats analysis.WeeklyStats
}

// GetTrendsData fetches aggregates for the trends screen
func (q *QueryService) GetTrendsData() (*TrendsData, error) {
	entries, err := q.store.ListWeightEntries()
	if err != nil {
		return nil, err
	}

	data := &TrendsData{
		Weekly:  analysis.WeeklyAverages(entries),
		Monthly: analysis.MonthlyAverages(entries),
		Stats:   analysis.ComputeWeeklyStats(entries),
	}

	ys := make([]float64, len(data.Weekly))
	for i, w := range data.Weekly {
		ys[i] = w.AverageKg
	}
	data.Trend = analysis.TrendLine(ys)

	return data, nil
}

// Prediction is a projected weight at one horizon
type Prediction struct {
	HorizonDays int
	WeightKg    float64
}

// PredictionsData contains the projected weights for the predictions screen
type PredictionsData struct {
	Predictions []Prediction
	// Ok is false when fewer than seven entries exist
	Ok bool
}

// GetPredictionsData projects the current trend forward 30, 60 and 90 days
func (q *QueryService) GetPredictionsData() (*PredictionsData, error) {
	entries, err := q.store.ListWeightEntries()
	if err != nil {
		return nil, err
	}

	data := &PredictionsData{}
	for _, horizon := range PredictionHorizons {
		weight, ok := analysis.Predict(entries, horizon)
		if !ok {
			return data, nil
		}
		data.Predictions = append(data.Predictions, Prediction{HorizonDays: horizon, WeightKg: weight})
	}
	data.Ok = true

	return data, nil
}

// ReportData wraps the weekly report for the report screen
type ReportData struct {
	Report *analysis.Report
	// Ok is false when fewer than two entries exist or the window is empty
	Ok bool
}

// GetReportData builds the report over the trailing seven days
func (q *QueryService) GetReportData(now time.Time) (*ReportData, error) {
	entries, err := q.store.ListWeightEntries()
	if err != nil {
		return nil, err
	}
	if len(entries) < 2 {
		return &ReportData{}, nil
	}

	profile, err := q.store.GetProfile()
	if err != nil && !errors.Is(err, store.ErrNoProfile) {
		return nil, err
	}

	report, ok := analysis.WeeklyReport(entries, profile, now)
	return &ReportData{Report: report, Ok: ok}, nil
}

// GetHistory returns every weight entry, newest first
func (q *QueryService) GetHistory() ([]store.WeightEntry, error) {
	return q.store.ListWeightEntries()
}

// GetProfile returns the stored profile, or store.ErrNoProfile
func (q *QueryService) GetProfile() (*store.Profile, error) {
	return q.store.GetProfile()
}
