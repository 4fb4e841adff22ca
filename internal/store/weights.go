package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// AddWeightEntry inserts a new weight measurement and returns the stored entry.
// The entry ID is the creation time in unix milliseconds; on a collision
// (two entries created within the same millisecond) the ID is bumped until
// unique so deletion by identity keeps working.
func (s *Store) AddWeightEntry(weightKg float64, recordedAt time.Time, notes string, auto bool) (*WeightEntry, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("weight must be positive, got %v", weightKg)
	}
	if recordedAt.IsZero() {
		return nil, fmt.Errorf("recorded_at is required")
	}

	id := time.Now().UnixMilli()
	for {
		_, err := s.db.Exec(
			`INSERT INTO weight_entries (id, weight_kg, recorded_at, notes, auto)
			 VALUES (?, ?, ?, ?, ?)`,
			id, weightKg, recordedAt.UTC().Format(time.RFC3339), notes, boolToInt(auto),
		)
		if err == nil {
			break
		}
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "PRIMARY") {
			id++
			continue
		}
		return nil, fmt.Errorf("inserting weight entry: %w", err)
	}

	return &WeightEntry{
		ID:         id,
		WeightKg:   weightKg,
		RecordedAt: recordedAt.UTC(),
		Notes:      notes,
		Auto:       auto,
	}, nil
}

// ListWeightEntries returns all weight entries sorted newest first.
func (s *Store) ListWeightEntries() ([]WeightEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, weight_kg, recorded_at, notes, auto
		 FROM weight_entries
		 ORDER BY recorded_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying weight entries: %w", err)
	}
	defer rows.Close()

	var entries []WeightEntry
	for rows.Next() {
		entry, err := scanWeightEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// LatestWeightEntry returns the most recent entry, or ErrEntryNotFound.
func (s *Store) LatestWeightEntry() (*WeightEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, weight_kg, recorded_at, notes, auto
		 FROM weight_entries
		 ORDER BY recorded_at DESC, id DESC
		 LIMIT 1`)

	entry, err := scanWeightEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteWeightEntry removes a single entry by ID.
func (s *Store) DeleteWeightEntry(id int64) error {
	result, err := s.db.Exec(`DELETE FROM weight_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting weight entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ClearWeightEntries removes all weight entries.
func (s *Store) ClearWeightEntries() error {
	if _, err := s.db.Exec(`DELETE FROM weight_entries`); err != nil {
		return fmt.Errorf("clearing weight entries: %w", err)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanWeightEntry(row scanner) (*WeightEntry, error) {
	var e WeightEntry
	var recordedAt string
	var auto int64

	if err := row.Scan(&e.ID, &e.WeightKg, &recordedAt, &e.Notes, &auto); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, recordedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
	}
	e.RecordedAt = t
	e.Auto = auto == 1
	return &e, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
