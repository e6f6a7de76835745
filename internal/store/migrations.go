package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Transcript table - every locked gesture, in order
		`CREATE TABLE IF NOT EXISTS transcript (
			id TEXT PRIMARY KEY,
			gesture TEXT NOT NULL,
			phrase TEXT NOT NULL,
			locked_at_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Phrase overrides table - per-gesture custom spoken text
		`CREATE TABLE IF NOT EXISTS phrase_overrides (
			gesture TEXT PRIMARY KEY,
			phrase TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_transcript_locked_at_ms ON transcript(locked_at_ms)`,
		`CREATE INDEX IF NOT EXISTS idx_transcript_gesture ON transcript(gesture)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
