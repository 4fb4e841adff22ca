// Package analysis computes statistics, trends, predictions and derived
// health metrics from the recorded weight series. All functions are pure:
// they take entries sorted newest first (the store's order) and return
// plain values for the UI to render.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"weightless/internal/store"
)

// WeeklyAverage is the mean weight for one ISO 8601 week.
type WeeklyAverage struct {
	WeekKey   string // e.g. "2025-W11"
	AverageKg float64
}

// MonthlyAverage is the mean weight for one calendar month.
type MonthlyAverage struct {
	MonthKey  string // e.g. "2025-03"
	AverageKg float64
}

// WeeklyAverages groups entries by ISO week (Monday-based, week 1 contains
// the year's first Thursday) and returns per-week means rounded to one
// decimal, sorted chronologically by week key.
func WeeklyAverages(entries []store.WeightEntry) []WeeklyAverage {
	if len(entries) < 2 {
		return nil
	}

	weights := make(map[string][]float64)
	for _, e := range entries {
		year, week := e.RecordedAt.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		weights[key] = append(weights[key], e.WeightKg)
	}

	keys := make([]string, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	averages := make([]WeeklyAverage, len(keys))
	for i, key := range keys {
		averages[i] = WeeklyAverage{WeekKey: key, AverageKg: round1(mean(weights[key]))}
	}
	return averages
}

// MonthlyAverages groups entries by calendar month, same semantics as
// WeeklyAverages.
func MonthlyAverages(entries []store.WeightEntry) []MonthlyAverage {
	if len(entries) < 2 {
		return nil
	}

	weights := make(map[string][]float64)
	for _, e := range entries {
		key := fmt.Sprintf("%d-%02d", e.RecordedAt.Year(), int(e.RecordedAt.Month()))
		weights[key] = append(weights[key], e.WeightKg)
	}

	keys := make([]string, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	averages := make([]MonthlyAverage, len(keys))
	for i, key := range keys {
		averages[i] = MonthlyAverage{MonthKey: key, AverageKg: round1(mean(weights[key]))}
	}
	return averages
}

// TrendLine fits an ordinary least-squares line to ys against index 0..n-1
// and returns the fitted value at each index. Returns nil for fewer than
// two points. For consecutive integer indices the OLS denominator is never
// zero, so no further guard is needed.
func TrendLine(ys []float64) []float64 {
	n := len(ys)
	if n < 2 {
		return nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	fitted := make([]float64, n)
	for i := range fitted {
		fitted[i] = slope*float64(i) + intercept
	}
	return fitted
}

// WeeklyStats summarizes the short-term direction of the weight series.
// ChangeKg is newest minus oldest over the 7 most recent entries by count
// (not by calendar week: irregularly spaced entries make these diverge, and
// both notions are kept deliberately). TrendDeltaKg is last minus first of
// the trend line fitted over the weekly averages.
type WeeklyStats struct {
	ChangeKg     float64
	TrendDeltaKg float64
}

// ComputeWeeklyStats derives WeeklyStats from the entry series (newest first).
func ComputeWeeklyStats(entries []store.WeightEntry) WeeklyStats {
	var stats WeeklyStats

	if len(entries) > 1 {
		window := entries[:min(7, len(entries))]
		stats.ChangeKg = window[0].WeightKg - window[len(window)-1].WeightKg
	}

	averages := WeeklyAverages(entries)
	ys := make([]float64, len(averages))
	for i, avg := range averages {
		ys[i] = avg.AverageKg
	}
	if trend := TrendLine(ys); len(trend) > 1 {
		stats.TrendDeltaKg = trend[len(trend)-1] - trend[0]
	}

	return stats
}

// Totals summarizes the whole weight history for the dashboard.
type Totals struct {
	CurrentKg      float64
	StartKg        float64
	TotalChangeKg  float64
	WeeklyChangeKg float64 // total change divided by elapsed weeks (min 1)
	LastDeltaKg    float64 // change from the previous entry
	HasLastDelta   bool
}

// ComputeTotals derives Totals from the entry series (newest first).
// Returns ok=false when no entries exist.
func ComputeTotals(entries []store.WeightEntry) (Totals, bool) {
	if len(entries) == 0 {
		return Totals{}, false
	}

	t := Totals{
		CurrentKg: entries[0].WeightKg,
		StartKg:   entries[len(entries)-1].WeightKg,
	}
	t.TotalChangeKg = t.CurrentKg - t.StartKg

	if len(entries) > 1 {
		first := entries[len(entries)-1].RecordedAt
		last := entries[0].RecordedAt
		weeks := math.Round(last.Sub(first).Hours() / (24 * 7))
		if weeks < 1 {
			weeks = 1
		}
		t.WeeklyChangeKg = t.TotalChangeKg / weeks

		t.LastDeltaKg = entries[0].WeightKg - entries[1].WeightKg
		t.HasLastDelta = true
	}

	return t, true
}

// FilterSince returns the entries recorded on or after the cutoff,
// preserving newest-first order.
func FilterSince(entries []store.WeightEntry, cutoff time.Time) []store.WeightEntry {
	var filtered []store.WeightEntry
	for _, e := range entries {
		if !e.RecordedAt.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
