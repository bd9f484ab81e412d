package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Signs table - vocabulary metadata for recognized and displayed signs
		`CREATE TABLE IF NOT EXISTS signs (
			id TEXT PRIMARY KEY,
			word TEXT NOT NULL UNIQUE,
			hands TEXT NOT NULL DEFAULT 'single' CHECK(hands IN ('single', 'double')),
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// History table - saved conversation sentences
		`CREATE TABLE IF NOT EXISTS history (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			mode TEXT NOT NULL DEFAULT 'sign_to_text',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
