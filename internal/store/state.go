package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const lastNotificationKey = "last_notification_time"

// GetState returns the value for a state key, or "" if unset.
func (s *Store) GetState(key string) (string, error) {
	row := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key)

	var value string
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying app state %q: %w", key, err)
	}
	return value, nil
}

// SetState stores a state key-value pair.
func (s *Store) SetState(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("setting app state %q: %w", key, err)
	}
	return nil
}

// LastNotificationTime returns when a reminder was last shown (zero if never).
func (s *Store) LastNotificationTime() (time.Time, error) {
	value, err := s.GetState(lastNotificationKey)
	if err != nil || value == "" {
		return time.Time{}, err
	}
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Corrupt value: treat as never notified
		return time.Time{}, nil
	}
	return time.UnixMilli(millis), nil
}

// SetLastNotificationTime records when a reminder was shown.
func (s *Store) SetLastNotificationTime(t time.Time) error {
	return s.SetState(lastNotificationKey, strconv.FormatInt(t.UnixMilli(), 10))
}
