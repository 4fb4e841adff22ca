package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// GetProfile returns the stored user profile. A stored row that fails
// validation is treated as corrupt: it is discarded and ErrNoProfile is
// returned so the caller prompts for a fresh profile instead of computing
// metrics from garbage.
func (s *Store) GetProfile() (*Profile, error) {
	row := s.db.QueryRow(
		`SELECT height_cm, age, gender, activity_level FROM profile WHERE id = 1`)

	var p Profile
	err := row.Scan(&p.HeightCm, &p.Age, &p.Gender, &p.ActivityLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		if _, delErr := s.db.Exec(`DELETE FROM profile WHERE id = 1`); delErr != nil {
			return nil, fmt.Errorf("discarding corrupt profile: %w", delErr)
		}
		return nil, ErrNoProfile
	}

	return &p, nil
}

// SaveProfile validates and stores the profile, replacing any existing one.
func (s *Store) SaveProfile(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		`INSERT INTO profile (id, height_cm, age, gender, activity_level)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			height_cm = excluded.height_cm,
			age = excluded.age,
			gender = excluded.gender,
			activity_level = excluded.activity_level,
			updated_at = CURRENT_TIMESTAMP`,
		p.HeightCm, p.Age, p.Gender, p.ActivityLevel)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
