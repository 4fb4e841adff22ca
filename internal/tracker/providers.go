package tracker

import "time"

// WatchOptions mirror the geolocation API knobs a provider should honor.
type WatchOptions struct {
	HighAccuracy bool
	MaxFixAge    time.Duration
	Timeout      time.Duration
}

// DefaultWatchOptions are a sensible configuration for live tracking.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		HighAccuracy: true,
		MaxFixAge:    time.Second,
		Timeout:      5 * time.Second,
	}
}

// LocationProvider delivers a stream of geolocation fixes. Watch returns a
// cancel function that must be called to release the watch; it must be safe
// to call more than once. Callbacks run on the provider's own goroutine,
// never synchronously from inside Watch. A provider that cannot deliver
// fixes (no hardware, permission denied) returns an error from Watch and
// the tracking feature degrades to motion-only.
type LocationProvider interface {
	Watch(opts WatchOptions, onFix func(Fix), onError func(error)) (cancel func(), err error)
}

// MotionProvider delivers a stream of accelerometer samples, same contract
// as LocationProvider.
type MotionProvider interface {
	Subscribe(onSample func(Motion)) (cancel func(), err error)
}
