package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"weightless/internal/store"
	"weightless/internal/tracker"
)

// fakeLocationProvider hands the fix callback to the test.
type fakeLocationProvider struct {
	onFix   func(tracker.Fix)
	cancels int
	err     error
}

func (f *fakeLocationProvider) Watch(opts tracker.WatchOptions, onFix func(tracker.Fix), onError func(error)) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.onFix = onFix
	return func() { f.cancels++ }, nil
}

type fakeMotionProvider struct {
	onSample func(tracker.Motion)
	cancels  int
	err      error
}

func (f *fakeMotionProvider) Subscribe(onSample func(tracker.Motion)) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.onSample = onSample
	return func() { f.cancels++ }, nil
}

func newTestActivityService(t *testing.T) (*ActivityService, *store.Store, *fakeLocationProvider, *fakeMotionProvider) {
	t.Helper()
	s := mustTestStore(t)
	loc := &fakeLocationProvider{}
	motion := &fakeMotionProvider{}
	a := NewActivityService(s, loc, motion, 70)
	a.now = func() time.Time { return now }
	return a, s, loc, motion
}

func TestActivityStopRecordsSessionAndEntry(t *testing.T) {
	a, s, loc, motion := newTestActivityService(t)
	addEntry(t, s, 80, now.Add(-time.Hour))

	if err := a.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if a.State() != tracker.Tracking {
		t.Fatalf("state = %v, want Tracking", a.State())
	}

	// Wake the session and cover ~111m in a minute
	motion.onSample(tracker.Motion{X: 2, At: now})
	loc.onFix(tracker.Fix{Lat: 0, Lng: 0, AccuracyM: 5, At: now})
	loc.onFix(tracker.Fix{Lat: 0, Lng: 0.001, AccuracyM: 5, At: now.Add(time.Minute)})

	if a.Stats().DistanceKm <= 0 {
		t.Fatal("expected accumulated distance")
	}

	a.now = func() time.Time { return now.Add(2 * time.Minute) }
	summary, ok, err := a.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !ok {
		t.Fatal("expected a summary")
	}
	if summary.DistanceKm <= 0 {
		t.Error("summary has no distance")
	}

	sessions, err := s.ListSessions()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	if sessions[0].DistanceKm != summary.DistanceKm {
		t.Errorf("stored distance = %v, want %v", sessions[0].DistanceKm, summary.DistanceKm)
	}

	latest, err := s.LatestWeightEntry()
	if err != nil {
		t.Fatal(err)
	}
	if !latest.Auto {
		t.Error("automatic entry not flagged auto")
	}
	if !strings.HasPrefix(latest.Notes, "Automatic update after burning") {
		t.Errorf("notes = %q", latest.Notes)
	}
	wantWeight := 80 - summary.WeightLossKg()
	if latest.WeightKg != wantWeight {
		t.Errorf("auto weight = %v, want %v", latest.WeightKg, wantWeight)
	}
}

func TestActivityStopWithoutDistance(t *testing.T) {
	a, s, _, _ := newTestActivityService(t)

	if err := a.Start(); err != nil {
		t.Fatal(err)
	}
	_, ok, err := a.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if ok {
		t.Error("empty session should produce no summary")
	}

	sessions, err := s.ListSessions()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 0 {
		t.Error("empty session was recorded")
	}
}

func TestActivityPauseReleasesProviders(t *testing.T) {
	a, _, loc, motion := newTestActivityService(t)

	if err := a.Start(); err != nil {
		t.Fatal(err)
	}
	a.Pause()
	if a.State() != tracker.Paused {
		t.Fatalf("state = %v, want Paused", a.State())
	}
	if loc.cancels != 1 || motion.cancels != 1 {
		t.Errorf("cancels = %d/%d, want 1/1", loc.cancels, motion.cancels)
	}

	if err := a.Resume(); err != nil {
		t.Fatal(err)
	}
	if a.State() != tracker.Tracking {
		t.Fatalf("state = %v, want Tracking after resume", a.State())
	}

	a.Stop()
	if loc.cancels != 2 || motion.cancels != 2 {
		t.Errorf("cancels after stop = %d/%d, want 2/2", loc.cancels, motion.cancels)
	}
}

func TestActivityStartDegradedProvider(t *testing.T) {
	s := mustTestStore(t)
	loc := &fakeLocationProvider{err: errors.New("no gps")}
	motion := &fakeMotionProvider{}
	a := NewActivityService(s, loc, motion, 70)
	a.now = func() time.Time { return now }

	// One working source: tracking starts anyway and the error is surfaced
	if err := a.Start(); err != nil {
		t.Fatalf("Start with one failing provider: %v", err)
	}
	if a.LastError() == nil {
		t.Error("provider error not recorded")
	}
}

func TestActivityStartAllProvidersFail(t *testing.T) {
	s := mustTestStore(t)
	loc := &fakeLocationProvider{err: errors.New("no gps")}
	motion := &fakeMotionProvider{err: errors.New("no accelerometer")}
	a := NewActivityService(s, loc, motion, 70)
	a.now = func() time.Time { return now }

	if err := a.Start(); err == nil {
		t.Error("expected error when no signal source is available")
	}
}

func TestActivityFallbackWeight(t *testing.T) {
	a, s, loc, motion := newTestActivityService(t)
	// No entries logged: calorie math uses the configured fallback

	if err := a.Start(); err != nil {
		t.Fatal(err)
	}
	motion.onSample(tracker.Motion{X: 2, At: now})
	loc.onFix(tracker.Fix{Lat: 0, Lng: 0, AccuracyM: 5, At: now})
	loc.onFix(tracker.Fix{Lat: 0, Lng: 0.001, AccuracyM: 5, At: now.Add(time.Minute)})

	summary, ok, err := a.Stop()
	if err != nil || !ok {
		t.Fatalf("Stop: ok=%v err=%v", ok, err)
	}

	latest, err := s.LatestWeightEntry()
	if err != nil {
		t.Fatal(err)
	}
	want := 70 - summary.WeightLossKg()
	if latest.WeightKg != want {
		t.Errorf("auto weight = %v, want %v", latest.WeightKg, want)
	}
}
