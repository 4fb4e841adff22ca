// Package tracker implements the GPS+accelerometer activity tracking
// state machine: lifecycle (idle/tracking/paused), distance smoothing,
// step debouncing and live calorie estimation.
//
// A Session is a plain state object: every transition and signal handler
// takes the event's timestamp, so behavior is deterministic and testable
// without a clock. Callers own synchronization; see service.ActivityService.
package tracker

import (
	"time"

	"weightless/internal/analysis"
)

// State is the tracking lifecycle state.
type State int

const (
	Idle State = iota
	Tracking
	Paused
)

func (s State) String() string {
	switch s {
	case Tracking:
		return "tracking"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Summary holds the totals of a finished session.
type Summary struct {
	StartedAt    time.Time
	Duration     time.Duration // wall time minus paused time
	DistanceKm   float64
	Steps        int
	CaloriesKcal float64
}

// WeightLossKg converts the burned calories into an estimated weight change.
func (s Summary) WeightLossKg() float64 {
	return s.CaloriesKcal / analysis.CaloriesPerKg
}

// Session owns all transient tracking state. The zero value is not usable;
// create one with NewSession.
type Session struct {
	state      State
	startedAt  time.Time
	pausedFor  time.Duration
	pauseStart time.Time

	bodyWeightKg float64

	// Location state
	lastLat, lastLng float64
	hasLocation      bool
	lastUpdate       time.Time
	smoother         distanceSmoother
	distanceKm       float64
	lastSpeedKmh     float64
	caloriesKcal     float64

	// Motion state
	lastAccel  [3]float64
	idle       bool
	steps      int
	lastStepAt time.Time
}

// NewSession creates an idle session. bodyWeightKg feeds the calorie
// estimate; pass 0 to fall back to the 70 kg default.
func NewSession(bodyWeightKg float64) *Session {
	if bodyWeightKg <= 0 {
		bodyWeightKg = analysis.DefaultBodyWeightKg
	}
	return &Session{bodyWeightKg: bodyWeightKg}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Start begins tracking. No-op unless idle.
func (s *Session) Start(at time.Time) bool {
	if s.state != Idle {
		return false
	}
	s.reset()
	s.state = Tracking
	s.startedAt = at
	s.lastUpdate = at
	return true
}

// Pause freezes accumulation. No-op unless tracking.
func (s *Session) Pause(at time.Time) bool {
	if s.state != Tracking {
		return false
	}
	s.state = Paused
	s.pauseStart = at
	return true
}

// Resume continues a paused session, adding the pause interval to the
// accumulated paused duration. No-op unless paused.
func (s *Session) Resume(at time.Time) bool {
	if s.state != Paused {
		return false
	}
	s.pausedFor += at.Sub(s.pauseStart)
	s.pauseStart = time.Time{}
	s.state = Tracking
	return true
}

// Stop ends the session from either tracking or paused state and resets
// all transient counters. The summary is returned with ok=true only when
// distance was accumulated; an empty session produces no record.
func (s *Session) Stop(at time.Time) (Summary, bool) {
	if s.state == Idle {
		return Summary{}, false
	}
	if s.state == Paused {
		s.pausedFor += at.Sub(s.pauseStart)
	}

	summary := Summary{
		StartedAt:    s.startedAt,
		Duration:     at.Sub(s.startedAt) - s.pausedFor,
		DistanceKm:   s.distanceKm,
		Steps:        s.steps,
		CaloriesKcal: s.caloriesKcal,
	}

	s.reset()
	s.state = Idle

	return summary, summary.DistanceKm > 0
}

// Stats is the live view of an in-progress session.
type Stats struct {
	DistanceKm   float64
	Steps        int
	SpeedKmh     float64
	CaloriesKcal float64
}

// Stats returns the current accumulated totals.
func (s *Session) Stats() Stats {
	return Stats{
		DistanceKm:   s.distanceKm,
		Steps:        s.steps,
		SpeedKmh:     s.lastSpeedKmh,
		CaloriesKcal: s.caloriesKcal,
	}
}

// ActiveDuration returns elapsed tracking time at now, excluding pauses.
func (s *Session) ActiveDuration(now time.Time) time.Duration {
	if s.state == Idle {
		return 0
	}
	d := now.Sub(s.startedAt) - s.pausedFor
	if s.state == Paused {
		d -= now.Sub(s.pauseStart)
	}
	if d < 0 {
		d = 0
	}
	return d
}

func (s *Session) reset() {
	start := s.bodyWeightKg
	*s = Session{bodyWeightKg: start}
}
