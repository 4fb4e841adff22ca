package gpx

import (
	"strings"
	"sync"
	"testing"
	"time"

	"weightless/internal/tracker"
)

func TestReplayDeliversAllFixes(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleGPX))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	provider, err := NewReplayProvider(doc)
	if err != nil {
		t.Fatalf("NewReplayProvider: %v", err)
	}
	provider.Speedup = 1000

	var (
		mu    sync.Mutex
		fixes []tracker.Fix
		done  = make(chan struct{})
	)
	cancel, err := provider.Watch(tracker.DefaultWatchOptions(), func(f tracker.Fix) {
		mu.Lock()
		fixes = append(fixes, f)
		if len(fixes) == 3 {
			close(done)
		}
		mu.Unlock()
	}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for replayed fixes")
	}

	mu.Lock()
	defer mu.Unlock()
	first := fixes[0]
	if first.Lat != 52.52 || first.Lng != 13.405 {
		t.Errorf("first fix = %v,%v", first.Lat, first.Lng)
	}
	if first.AccuracyM != replayAccuracyM {
		t.Errorf("accuracy = %v, want %v", first.AccuracyM, replayAccuracyM)
	}
	want := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if !first.At.Equal(want) {
		t.Errorf("fix keeps recorded timestamp: got %v, want %v", first.At, want)
	}
}

func TestReplayCancelStopsDelivery(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleGPX))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	provider, _ := NewReplayProvider(doc)
	// Real-time replay: 10s gaps mean nothing past the first fix arrives
	// before cancellation.
	cancel, err := provider.Watch(tracker.DefaultWatchOptions(), func(tracker.Fix) {}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	cancel()
	cancel() // safe to call twice
}

func TestReplayResumesWhereItStopped(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleGPX))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	provider, _ := NewReplayProvider(doc)

	// Real-time replay: the goroutine sits in the 10s gap after the first
	// fix, so cancellation lands before the second point is delivered.
	first := make(chan tracker.Fix, 1)
	cancel, err := provider.Watch(tracker.DefaultWatchOptions(), func(f tracker.Fix) {
		select {
		case first <- f:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	select {
	case f := <-first:
		if f.Lat != 52.52 {
			t.Fatalf("first fix lat = %v, want 52.52", f.Lat)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first fix")
	}
	cancel()

	// A fresh Watch must pick up at the second point, not restart the track
	resumed := make(chan tracker.Fix, 1)
	cancel2, err := provider.Watch(tracker.DefaultWatchOptions(), func(f tracker.Fix) {
		select {
		case resumed <- f:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("Watch after cancel: %v", err)
	}
	defer cancel2()

	select {
	case f := <-resumed:
		if f.Lat != 52.5201 {
			t.Errorf("resumed fix lat = %v, want 52.5201", f.Lat)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for resumed fix")
	}
}

func TestNewReplayProviderRejectsEmpty(t *testing.T) {
	if _, err := NewReplayProvider(&GPX{}); err == nil {
		t.Error("expected error for empty document")
	}
}
