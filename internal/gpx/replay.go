package gpx

import (
	"errors"
	"sync"
	"time"

	"weightless/internal/tracker"
)

// replayAccuracyM is reported for every replayed fix. Recorded tracks carry
// no accuracy, so replay assumes a good signal.
const replayAccuracyM = 5

// ReplayProvider feeds a recorded track back as a stream of fixes. It
// implements tracker.LocationProvider; the Speedup factor compresses the
// gaps between point timestamps (0 means real time). Replay position
// survives a cancel: a later Watch continues from the first undelivered
// point, so a pause/resume cycle does not jump back to the track start.
type ReplayProvider struct {
	Points  []Point
	Speedup float64

	mu   sync.Mutex
	next int
}

// NewReplayProvider builds a provider over every point in the document.
func NewReplayProvider(doc *GPX) (*ReplayProvider, error) {
	points := doc.AllPoints()
	if len(points) == 0 {
		return nil, errors.New("gpx document has no track points")
	}
	return &ReplayProvider{Points: points}, nil
}

// Watch replays the track on a goroutine, delivering one fix per point.
// Fixes keep their recorded timestamps so downstream speed and distance
// math matches the original recording regardless of Speedup. The first
// point after a Watch is delivered without waiting out the recorded gap.
func (p *ReplayProvider) Watch(opts tracker.WatchOptions, onFix func(tracker.Fix), onError func(error)) (func(), error) {
	if len(p.Points) == 0 {
		return nil, errors.New("gpx replay has no points")
	}

	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() { close(done) })
	}

	go func() {
		var prev time.Time
		for {
			p.mu.Lock()
			i := p.next
			if i >= len(p.Points) {
				p.mu.Unlock()
				return
			}
			pt := p.Points[i]
			p.mu.Unlock()

			if !prev.IsZero() {
				if wait := p.scaled(pt.Time.Sub(prev)); wait > 0 {
					select {
					case <-done:
						return
					case <-time.After(wait):
					}
				}
			}
			select {
			case <-done:
				return
			default:
			}
			prev = pt.Time

			// Advance only once the point is actually delivered, so a
			// cancel mid-wait leaves it for the next Watch
			p.mu.Lock()
			p.next = i + 1
			p.mu.Unlock()

			onFix(tracker.Fix{
				Lat:       pt.Lat,
				Lng:       pt.Lon,
				AccuracyM: replayAccuracyM,
				At:        pt.Time,
			})
		}
	}()

	return cancel, nil
}

func (p *ReplayProvider) scaled(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	if p.Speedup <= 1 {
		return d
	}
	return time.Duration(float64(d) / p.Speedup)
}
