package analysis

import (
	"math"
	"sort"
	"testing"
	"time"

	"weightless/internal/store"
)

// entriesFromDaily builds a newest-first entry list from (date, weight)
// pairs given oldest first, mirroring how the store returns data.
func entriesFromDaily(t *testing.T, start time.Time, weights []float64) []store.WeightEntry {
	t.Helper()
	entries := make([]store.WeightEntry, len(weights))
	for i, w := range weights {
		at := start.AddDate(0, 0, i)
		entries[len(weights)-1-i] = store.WeightEntry{
			ID:         at.UnixMilli(),
			WeightKg:   w,
			RecordedAt: at,
		}
	}
	return entries
}

func TestWeeklyAverages(t *testing.T) {
	// Mon 2025-03-03 through Sun 2025-03-09 is ISO week 10,
	// Mon 2025-03-10 starts week 11.
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	entries := entriesFromDaily(t, start, []float64{80, 80.5, 81, 79, 79.2, 79, 79, 78, 78.2})

	averages := WeeklyAverages(entries)
	if len(averages) != 2 {
		t.Fatalf("got %d weeks, want 2", len(averages))
	}

	if averages[0].WeekKey != "2025-W10" || averages[1].WeekKey != "2025-W11" {
		t.Errorf("unexpected week keys: %v, %v", averages[0].WeekKey, averages[1].WeekKey)
	}
	if !sort.SliceIsSorted(averages, func(i, j int) bool {
		return averages[i].WeekKey < averages[j].WeekKey
	}) {
		t.Error("weeks not sorted chronologically")
	}

	// Week 10: mean(80, 80.5, 81, 79, 79.2, 79, 79) = 79.67... -> 79.7
	if averages[0].AverageKg != 79.7 {
		t.Errorf("week 10 average = %v, want 79.7", averages[0].AverageKg)
	}
	// Week 11: mean(78, 78.2) = 78.1
	if averages[1].AverageKg != 78.1 {
		t.Errorf("week 11 average = %v, want 78.1", averages[1].AverageKg)
	}
}

func TestWeeklyAveragesTooFewEntries(t *testing.T) {
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	if got := WeeklyAverages(nil); got != nil {
		t.Errorf("WeeklyAverages(nil) = %v, want nil", got)
	}
	one := entriesFromDaily(t, start, []float64{80})
	if got := WeeklyAverages(one); got != nil {
		t.Errorf("WeeklyAverages(one entry) = %v, want nil", got)
	}
}

func TestMonthlyAverages(t *testing.T) {
	start := time.Date(2025, 1, 30, 8, 0, 0, 0, time.UTC)
	entries := entriesFromDaily(t, start, []float64{82, 82, 81, 81}) // Jan 30-31, Feb 1-2

	averages := MonthlyAverages(entries)
	if len(averages) != 2 {
		t.Fatalf("got %d months, want 2", len(averages))
	}
	if averages[0].MonthKey != "2025-01" || averages[1].MonthKey != "2025-02" {
		t.Errorf("unexpected month keys: %+v", averages)
	}
	if averages[0].AverageKg != 82 || averages[1].AverageKg != 81 {
		t.Errorf("unexpected averages: %+v", averages)
	}
}

func TestTrendLine(t *testing.T) {
	tests := []struct {
		name string
		ys   []float64
		want []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{5}, nil},
		{"zero slope", []float64{1, 1, 1}, []float64{1, 1, 1}},
		{"perfect line", []float64{2, 4, 6, 8}, []float64{2, 4, 6, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrendLine(tt.ys)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("fitted[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTrendLineFitsNoisyData(t *testing.T) {
	ys := []float64{80, 79.6, 79.9, 79.1, 79.3, 78.8}
	fitted := TrendLine(ys)
	if len(fitted) != len(ys) {
		t.Fatalf("len = %d, want %d", len(fitted), len(ys))
	}
	// The fit on a downward series must itself be downward
	if fitted[len(fitted)-1] >= fitted[0] {
		t.Errorf("trend not decreasing: first %v, last %v", fitted[0], fitted[len(fitted)-1])
	}
	// OLS residuals sum to zero
	var residuals float64
	for i := range ys {
		residuals += ys[i] - fitted[i]
	}
	if math.Abs(residuals) > 1e-9 {
		t.Errorf("residual sum = %v, want 0", residuals)
	}
}

func TestComputeWeeklyStats(t *testing.T) {
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	t.Run("too few entries", func(t *testing.T) {
		stats := ComputeWeeklyStats(entriesFromDaily(t, start, []float64{80}))
		if stats.ChangeKg != 0 || stats.TrendDeltaKg != 0 {
			t.Errorf("stats = %+v, want zeros", stats)
		}
	})

	t.Run("change over last seven by count", func(t *testing.T) {
		// Ten daily entries; the change window covers only the newest seven.
		weights := []float64{85, 84, 83, 82, 81.5, 81, 80.5, 80, 79.5, 79}
		stats := ComputeWeeklyStats(entriesFromDaily(t, start, weights))
		// Newest seven (newest first): 79 ... 82 -> change = 79 - 82 = -3
		if math.Abs(stats.ChangeKg-(-3)) > 1e-9 {
			t.Errorf("ChangeKg = %v, want -3", stats.ChangeKg)
		}
		// Weight is falling, so the weekly trend delta must be negative
		if stats.TrendDeltaKg >= 0 {
			t.Errorf("TrendDeltaKg = %v, want < 0", stats.TrendDeltaKg)
		}
	})
}

func TestComputeTotals(t *testing.T) {
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	if _, ok := ComputeTotals(nil); ok {
		t.Error("ComputeTotals(nil) ok = true, want false")
	}

	// 15 daily entries spanning two weeks
	weights := make([]float64, 15)
	for i := range weights {
		weights[i] = 82 - 0.2*float64(i)
	}
	totals, ok := ComputeTotals(entriesFromDaily(t, start, weights))
	if !ok {
		t.Fatal("ComputeTotals ok = false")
	}
	if totals.StartKg != 82 {
		t.Errorf("StartKg = %v, want 82", totals.StartKg)
	}
	if math.Abs(totals.CurrentKg-79.2) > 1e-9 {
		t.Errorf("CurrentKg = %v, want 79.2", totals.CurrentKg)
	}
	if math.Abs(totals.TotalChangeKg-(-2.8)) > 1e-9 {
		t.Errorf("TotalChangeKg = %v, want -2.8", totals.TotalChangeKg)
	}
	// 14 days -> 2 weeks -> -1.4/week
	if math.Abs(totals.WeeklyChangeKg-(-1.4)) > 1e-9 {
		t.Errorf("WeeklyChangeKg = %v, want -1.4", totals.WeeklyChangeKg)
	}
	if !totals.HasLastDelta || math.Abs(totals.LastDeltaKg-(-0.2)) > 1e-9 {
		t.Errorf("LastDeltaKg = %v (has=%v), want -0.2", totals.LastDeltaKg, totals.HasLastDelta)
	}
}

func TestComputeTotalsShortSpanUsesOneWeek(t *testing.T) {
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	totals, ok := ComputeTotals(entriesFromDaily(t, start, []float64{80, 79}))
	if !ok {
		t.Fatal("ComputeTotals ok = false")
	}
	// One day apart still counts as one week
	if math.Abs(totals.WeeklyChangeKg-(-1)) > 1e-9 {
		t.Errorf("WeeklyChangeKg = %v, want -1", totals.WeeklyChangeKg)
	}
}
