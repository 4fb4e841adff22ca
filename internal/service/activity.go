package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"weightless/internal/store"
	"weightless/internal/tracker"
)

// ActivityService owns the tracking session and its providers. The tracker
// session itself is not thread-safe; all access goes through the service
// mutex because provider callbacks arrive on their own goroutines.
type ActivityService struct {
	mu sync.Mutex

	store    *store.Store
	location tracker.LocationProvider
	motion   tracker.MotionProvider

	session        *tracker.Session
	cancelLocation func()
	cancelMotion   func()
	lastErr        error

	fallbackWeightKg float64
	now              func() time.Time
}

// NewActivityService creates the activity service. Either provider may be
// nil; tracking then runs without that signal source.
func NewActivityService(s *store.Store, location tracker.LocationProvider, motion tracker.MotionProvider, fallbackWeightKg float64) *ActivityService {
	return &ActivityService{
		store:            s,
		location:         location,
		motion:           motion,
		fallbackWeightKg: fallbackWeightKg,
		now:              time.Now,
	}
}

// bodyWeight returns the most recent logged weight, falling back to the
// configured default when the log is empty.
func (a *ActivityService) bodyWeight() float64 {
	latest, err := a.store.LatestWeightEntry()
	if err != nil {
		return a.fallbackWeightKg
	}
	return latest.WeightKg
}

// Start begins a tracking session. No-op when one is already running.
func (a *ActivityService) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil && a.session.State() != tracker.Idle {
		return nil
	}

	a.session = tracker.NewSession(a.bodyWeight())
	a.session.Start(a.now())
	a.lastErr = nil

	return a.subscribeLocked()
}

// Pause freezes the session and releases the signal providers.
func (a *ActivityService) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil || !a.session.Pause(a.now()) {
		return
	}
	a.unsubscribeLocked()
}

// Resume continues a paused session and reattaches the providers.
func (a *ActivityService) Resume() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil || !a.session.Resume(a.now()) {
		return nil
	}
	return a.subscribeLocked()
}

// Stop ends the session. When distance was covered it appends an activity
// record and logs an automatic weight entry derived from the calories
// burned. Returns the summary with ok=true in that case.
func (a *ActivityService) Stop() (tracker.Summary, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return tracker.Summary{}, false, nil
	}

	a.unsubscribeLocked()
	summary, ok := a.session.Stop(a.now())
	if !ok {
		return summary, false, nil
	}

	if _, err := a.store.AppendSession(store.ActivitySession{
		RecordedAt:   summary.StartedAt,
		DistanceKm:   summary.DistanceKm,
		Steps:        summary.Steps,
		CaloriesKcal: summary.CaloriesKcal,
	}); err != nil {
		return summary, true, fmt.Errorf("recording session: %w", err)
	}

	newWeight := a.bodyWeight() - summary.WeightLossKg()
	notes := fmt.Sprintf("Automatic update after burning %.0f kcal during activity", summary.CaloriesKcal)
	if _, err := a.store.AddWeightEntry(newWeight, a.now(), notes, true); err != nil {
		return summary, true, fmt.Errorf("logging automatic entry: %w", err)
	}

	return summary, true, nil
}

// Stats returns the live session totals.
func (a *ActivityService) Stats() tracker.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return tracker.Stats{}
	}
	return a.session.Stats()
}

// State returns the lifecycle state of the current session.
func (a *ActivityService) State() tracker.State {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return tracker.Idle
	}
	return a.session.State()
}

// ActiveDuration returns elapsed tracking time, excluding pauses.
func (a *ActivityService) ActiveDuration() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return 0
	}
	return a.session.ActiveDuration(a.now())
}

// LastError returns the most recent provider error, if any.
func (a *ActivityService) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// HandleFix forwards a fix to the session. Exposed so tests and replay
// tooling can drive the service directly.
func (a *ActivityService) HandleFix(f tracker.Fix) tracker.FixOutcome {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return tracker.FixIgnored
	}
	return a.session.HandleFix(f)
}

// HandleMotion forwards an accelerometer sample to the session.
func (a *ActivityService) HandleMotion(m tracker.Motion) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return false
	}
	return a.session.HandleMotion(m)
}

// subscribeLocked attaches both providers. A provider error is recorded
// but does not abort tracking; the session degrades to the remaining
// signal source. Both failing is fatal.
func (a *ActivityService) subscribeLocked() error {
	var locErr, motionErr error

	if a.location != nil {
		cancel, err := a.location.Watch(tracker.DefaultWatchOptions(),
			func(f tracker.Fix) { a.HandleFix(f) },
			func(err error) { a.setErr(err) },
		)
		if err != nil {
			locErr = err
			a.lastErr = err
		} else {
			a.cancelLocation = cancel
		}
	}

	if a.motion != nil {
		cancel, err := a.motion.Subscribe(func(m tracker.Motion) { a.HandleMotion(m) })
		if err != nil {
			motionErr = err
			a.lastErr = err
		} else {
			a.cancelMotion = cancel
		}
	}

	if a.location != nil && a.motion != nil && locErr != nil && motionErr != nil {
		return errors.New("no signal source available: " + locErr.Error())
	}
	return nil
}

func (a *ActivityService) unsubscribeLocked() {
	if a.cancelLocation != nil {
		a.cancelLocation()
		a.cancelLocation = nil
	}
	if a.cancelMotion != nil {
		a.cancelMotion()
		a.cancelMotion = nil
	}
}

func (a *ActivityService) setErr(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastErr = err
}
