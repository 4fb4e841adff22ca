package store

import (
	"testing"
	"time"
)

func TestAppendAndListSessions(t *testing.T) {
	s := mustTestStore(t)

	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.AppendSession(ActivitySession{
			RecordedAt:   base.AddDate(0, 0, i),
			DistanceKm:   2.5,
			Steps:        3000,
			CaloriesKcal: 180,
		})
		if err != nil {
			t.Fatalf("AppendSession: %v", err)
		}
	}

	sessions, err := s.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	// Oldest first, each with a generated ID
	for i, session := range sessions {
		if session.ID == "" {
			t.Errorf("session %d has empty ID", i)
		}
		if i > 0 && sessions[i-1].RecordedAt.After(session.RecordedAt) {
			t.Errorf("sessions not sorted oldest first")
		}
	}
}

func TestSessionTotals(t *testing.T) {
	s := mustTestStore(t)

	distance, steps, calories, err := s.SessionTotals()
	if err != nil {
		t.Fatalf("SessionTotals (empty): %v", err)
	}
	if distance != 0 || steps != 0 || calories != 0 {
		t.Errorf("empty totals = %v/%v/%v, want zeros", distance, steps, calories)
	}

	s.AppendSession(ActivitySession{RecordedAt: time.Now(), DistanceKm: 2, Steps: 2500, CaloriesKcal: 150})
	s.AppendSession(ActivitySession{RecordedAt: time.Now(), DistanceKm: 3, Steps: 3500, CaloriesKcal: 210})

	distance, steps, calories, err = s.SessionTotals()
	if err != nil {
		t.Fatalf("SessionTotals: %v", err)
	}
	if distance != 5 || steps != 6000 || calories != 360 {
		t.Errorf("totals = %v/%v/%v, want 5/6000/360", distance, steps, calories)
	}
}

func TestAppendSessionRejectsNegative(t *testing.T) {
	s := mustTestStore(t)

	if _, err := s.AppendSession(ActivitySession{DistanceKm: -1}); err == nil {
		t.Error("expected error for negative distance")
	}
}

func TestClearSessions(t *testing.T) {
	s := mustTestStore(t)

	s.AppendSession(ActivitySession{RecordedAt: time.Now(), DistanceKm: 1})
	if err := s.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions: %v", err)
	}
	sessions, _ := s.ListSessions()
	if len(sessions) != 0 {
		t.Errorf("got %d sessions after clear, want 0", len(sessions))
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := mustTestStore(t)

	last, err := s.LastNotificationTime()
	if err != nil {
		t.Fatalf("LastNotificationTime (unset): %v", err)
	}
	if !last.IsZero() {
		t.Errorf("unset last notification = %v, want zero", last)
	}

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if err := s.SetLastNotificationTime(at); err != nil {
		t.Fatalf("SetLastNotificationTime: %v", err)
	}
	last, err = s.LastNotificationTime()
	if err != nil {
		t.Fatalf("LastNotificationTime: %v", err)
	}
	if !last.Equal(at) {
		t.Errorf("last notification = %v, want %v", last, at)
	}
}
