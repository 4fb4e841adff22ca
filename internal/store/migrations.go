package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Weight entries. The id is the creation time in unix milliseconds,
		// which doubles as a unique token for deletion.
		`CREATE TABLE IF NOT EXISTS weight_entries (
			id INTEGER PRIMARY KEY,
			weight_kg REAL NOT NULL CHECK (weight_kg > 0),
			recorded_at TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			auto INTEGER NOT NULL DEFAULT 0,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_weight_entries_recorded_at ON weight_entries(recorded_at)`,

		// User profile (singleton row)
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			height_cm REAL NOT NULL,
			age INTEGER NOT NULL,
			gender TEXT NOT NULL,
			activity_level TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Completed activity sessions (append-only queue)
		`CREATE TABLE IF NOT EXISTS activity_sessions (
			id TEXT PRIMARY KEY,
			recorded_at TEXT NOT NULL,
			distance_km REAL NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			calories_kcal REAL NOT NULL DEFAULT 0,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activity_sessions_recorded_at ON activity_sessions(recorded_at)`,

		// App state (key-value store, e.g. last notification time)
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
