package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Backup is the JSON snapshot format produced by the export command.
type Backup struct {
	ExportedAt time.Time         `json:"exported_at"`
	Profile    *Profile          `json:"profile,omitempty"`
	Entries    []WeightEntry     `json:"entries"`
	Sessions   []ActivitySession `json:"sessions,omitempty"`
}

// ExportBackup snapshots the whole database.
func (s *Store) ExportBackup() (*Backup, error) {
	entries, err := s.ListWeightEntries()
	if err != nil {
		return nil, err
	}
	sessions, err := s.ListSessions()
	if err != nil {
		return nil, err
	}

	profile, err := s.GetProfile()
	if err != nil && !errors.Is(err, ErrNoProfile) {
		return nil, err
	}

	return &Backup{
		ExportedAt: time.Now().UTC(),
		Profile:    profile,
		Entries:    entries,
		Sessions:   sessions,
	}, nil
}

// ImportBackup merges a snapshot into the database. Entries are re-created
// with fresh IDs; sessions keep their IDs and duplicates are skipped, so
// re-importing the same file is safe. Returns how many of each were added.
func (s *Store) ImportBackup(b *Backup) (entries, sessions int, err error) {
	for _, e := range b.Entries {
		if _, err := s.AddWeightEntry(e.WeightKg, e.RecordedAt, e.Notes, e.Auto); err != nil {
			return entries, sessions, fmt.Errorf("importing entry at %s: %w", e.RecordedAt.Format(time.RFC3339), err)
		}
		entries++
	}

	for _, session := range b.Sessions {
		if _, err := s.AppendSession(session); err != nil {
			if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "PRIMARY") {
				continue
			}
			return entries, sessions, fmt.Errorf("importing session %s: %w", session.ID, err)
		}
		sessions++
	}

	if b.Profile != nil {
		if err := s.SaveProfile(*b.Profile); err != nil {
			return entries, sessions, fmt.Errorf("importing profile: %w", err)
		}
	}

	return entries, sessions, nil
}

// MarshalBackup encodes a backup as indented JSON.
func MarshalBackup(b *Backup) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return append(data, '\n'), nil
}

// UnmarshalBackup decodes a backup produced by MarshalBackup.
func UnmarshalBackup(data []byte) (*Backup, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing backup: %w", err)
	}
	return &b, nil
}
