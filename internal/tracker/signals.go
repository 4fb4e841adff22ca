package tracker

import (
	"math"
	"time"

	"weightless/internal/analysis"
	"weightless/internal/geo"
)

// Signal thresholds. GPS fixes worse than the accuracy limit are noise;
// the speed cap protects the distance total against GPS jumps.
const (
	MaxAccuracyM = 20.0
	MaxSpeedKmh  = 60.0

	smoothingWindow = 5
	minFixInterval  = time.Second

	idleAccelThreshold = 0.5 // m/s²: below this the wearer is considered idle
	stepDeltaMin       = 1.2 // m/s²
	stepDeltaMax       = 5.0 // m/s²
	minStepInterval    = 300 * time.Millisecond
)

// Fix is a raw geolocation update.
type Fix struct {
	Lat       float64
	Lng       float64
	AccuracyM float64
	At        time.Time
}

// Motion is a raw accelerometer sample (gravity-inclusive preferred).
type Motion struct {
	X, Y, Z float64
	At      time.Time
}

// FixOutcome reports what a fix contributed.
type FixOutcome int

const (
	FixIgnored     FixOutcome = iota // not tracking
	FixLowAccuracy                   // rejected, accuracy worse than MaxAccuracyM
	FixFirst                         // accepted as the starting location
	FixAccepted                      // accepted, distance updated
	FixDiscarded                     // accepted but idle or implausibly fast
)

// HandleFix processes a location update. Fixes are ignored while paused or
// idle. The last accepted location and update time always advance after a
// fix passes the accuracy gate, even when its distance is discarded.
func (s *Session) HandleFix(f Fix) FixOutcome {
	if s.state != Tracking {
		return FixIgnored
	}
	if f.AccuracyM > MaxAccuracyM {
		return FixLowAccuracy
	}

	outcome := FixFirst
	if s.hasLocation {
		raw := geo.HaversineKm(s.lastLat, s.lastLng, f.Lat, f.Lng)
		smoothed := s.smoother.push(raw)

		elapsed := f.At.Sub(s.lastUpdate)
		if elapsed < minFixInterval {
			elapsed = minFixInterval
		}
		hours := elapsed.Hours()

		// Outlier rejection: the interval bounds how far anyone can move
		distance := math.Min(smoothed, MaxSpeedKmh*hours)
		speed := distance / hours

		if !s.idle && speed <= MaxSpeedKmh {
			s.distanceKm += distance
			s.lastSpeedKmh = speed
			s.caloriesKcal = analysis.METForSpeed(speed) * s.bodyWeightKg * s.ActiveDuration(f.At).Hours()
			outcome = FixAccepted
		} else {
			outcome = FixDiscarded
		}
	}

	s.lastLat, s.lastLng = f.Lat, f.Lng
	s.hasLocation = true
	s.lastUpdate = f.At

	return outcome
}

// HandleMotion processes an accelerometer sample, updating the idle flag
// and registering debounced steps. Returns true when a step is counted.
// Samples are ignored unless tracking.
func (s *Session) HandleMotion(m Motion) bool {
	if s.state != Tracking {
		return false
	}

	dx := m.X - s.lastAccel[0]
	dy := m.Y - s.lastAccel[1]
	dz := m.Z - s.lastAccel[2]
	delta := math.Sqrt(dx*dx + dy*dy + dz*dz)

	s.lastAccel = [3]float64{m.X, m.Y, m.Z}
	s.idle = delta < idleAccelThreshold

	if !s.idle && delta > stepDeltaMin && delta < stepDeltaMax &&
		(s.lastStepAt.IsZero() || m.At.Sub(s.lastStepAt) > minStepInterval) {
		s.steps++
		s.lastStepAt = m.At
		return true
	}
	return false
}

// distanceSmoother is a bounded ring of recent raw distance deltas; the
// smoothed distance is the mean of its contents.
type distanceSmoother struct {
	samples []float64
}

func (d *distanceSmoother) push(km float64) float64 {
	d.samples = append(d.samples, km)
	if len(d.samples) > smoothingWindow {
		d.samples = d.samples[1:]
	}

	var sum float64
	for _, v := range d.samples {
		sum += v
	}
	return sum / float64(len(d.samples))
}
