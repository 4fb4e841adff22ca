package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppendSession adds a completed activity session to the queue.
// Sessions are append-only: never updated, only appended or fully cleared.
func (s *Store) AppendSession(session ActivitySession) (*ActivitySession, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.RecordedAt.IsZero() {
		session.RecordedAt = time.Now()
	}
	if session.DistanceKm < 0 || session.Steps < 0 || session.CaloriesKcal < 0 {
		return nil, fmt.Errorf("session totals must be non-negative")
	}

	_, err := s.db.Exec(
		`INSERT INTO activity_sessions (id, recorded_at, distance_km, steps, calories_kcal)
		 VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.RecordedAt.UTC().Format(time.RFC3339),
		session.DistanceKm, session.Steps, session.CaloriesKcal)
	if err != nil {
		return nil, fmt.Errorf("appending activity session: %w", err)
	}
	return &session, nil
}

// ListSessions returns all queued activity sessions, oldest first.
func (s *Store) ListSessions() ([]ActivitySession, error) {
	rows, err := s.db.Query(
		`SELECT id, recorded_at, distance_km, steps, calories_kcal
		 FROM activity_sessions
		 ORDER BY recorded_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying activity sessions: %w", err)
	}
	defer rows.Close()

	var sessions []ActivitySession
	for rows.Next() {
		var session ActivitySession
		var recordedAt string
		if err := rows.Scan(&session.ID, &recordedAt, &session.DistanceKm,
			&session.Steps, &session.CaloriesKcal); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
		}
		session.RecordedAt = t
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// SessionTotals returns aggregate distance, steps and calories across the queue.
func (s *Store) SessionTotals() (distanceKm float64, steps int, caloriesKcal float64, err error) {
	row := s.db.QueryRow(
		`SELECT COALESCE(SUM(distance_km), 0), COALESCE(SUM(steps), 0), COALESCE(SUM(calories_kcal), 0)
		 FROM activity_sessions`)
	if err := row.Scan(&distanceKm, &steps, &caloriesKcal); err != nil {
		return 0, 0, 0, fmt.Errorf("summing activity sessions: %w", err)
	}
	return distanceKm, steps, caloriesKcal, nil
}

// ClearSessions removes all queued activity sessions.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec(`DELETE FROM activity_sessions`); err != nil {
		return fmt.Errorf("clearing activity sessions: %w", err)
	}
	return nil
}
