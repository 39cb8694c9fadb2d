package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates are tolerated because the whole list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS student_profiles (
		slot TEXT PRIMARY KEY CHECK (slot = 'default'),
		id TEXT NOT NULL,
		current_term TEXT NOT NULL,
		interest_areas TEXT NOT NULL DEFAULT '[]',
		career_paths TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completed_courses (
		profile_slot TEXT NOT NULL REFERENCES student_profiles(slot) ON DELETE CASCADE,
		course_name TEXT NOT NULL,
		PRIMARY KEY (profile_slot, course_name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completed_courses_profile
		ON completed_courses(profile_slot)`,
}
