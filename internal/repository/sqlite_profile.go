package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/daehakro/courseplan/internal/db"
	"github.com/daehakro/courseplan/internal/domain"
)

// profileSlot pins the single-profile table to one row.
const profileSlot = "default"

// SQLiteStudentProfileRepo implements StudentProfileRepo using a SQLite
// database.
type SQLiteStudentProfileRepo struct {
	db db.DBTX
}

// NewSQLiteStudentProfileRepo creates a new SQLiteStudentProfileRepo.
func NewSQLiteStudentProfileRepo(conn db.DBTX) *SQLiteStudentProfileRepo {
	return &SQLiteStudentProfileRepo{db: conn}
}

func (r *SQLiteStudentProfileRepo) Get(ctx context.Context) (*domain.StudentProfile, error) {
	query := `SELECT id, current_term, interest_areas, career_paths, created_at, updated_at
		FROM student_profiles WHERE slot = ?`
	row := r.db.QueryRowContext(ctx, query, profileSlot)

	var (
		p                        domain.StudentProfile
		term                     string
		interestsRaw, careersRaw string
		createdAt, updatedAt     string
	)
	err := row.Scan(&p.ID, &term, &interestsRaw, &careersRaw, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student profile: %w", err)
	}

	p.CurrentTerm, err = domain.ParseTerm(term)
	if err != nil {
		return nil, fmt.Errorf("stored current term %q: %w", term, err)
	}
	p.RankedInterestAreas, err = unmarshalJSONList[domain.InterestArea](interestsRaw)
	if err != nil {
		return nil, fmt.Errorf("stored interest areas: %w", err)
	}
	p.RankedCareerPaths, err = unmarshalJSONList[string](careersRaw)
	if err != nil {
		return nil, fmt.Errorf("stored career paths: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	p.CompletedCourses, err = r.listCompleted(ctx)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteStudentProfileRepo) listCompleted(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_name FROM completed_courses WHERE profile_slot = ? ORDER BY course_name`,
		profileSlot)
	if err != nil {
		return nil, fmt.Errorf("listing completed courses: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning completed course: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completed courses: %w", err)
	}
	return names, nil
}

func (r *SQLiteStudentProfileRepo) Upsert(ctx context.Context, p *domain.StudentProfile) error {
	interestsRaw, err := marshalJSONList(p.RankedInterestAreas)
	if err != nil {
		return err
	}
	careersRaw, err := marshalJSONList(p.RankedCareerPaths)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO student_profiles
		(slot, id, current_term, interest_areas, career_paths, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		profileSlot,
		p.ID,
		p.CurrentTerm.String(),
		interestsRaw,
		careersRaw,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting student profile: %w", err)
	}

	// Completed courses are replaced wholesale; the set is small and the
	// profile is the only writer.
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM completed_courses WHERE profile_slot = ?`, profileSlot); err != nil {
		return fmt.Errorf("clearing completed courses: %w", err)
	}
	for _, name := range p.CompletedCourses {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO completed_courses (profile_slot, course_name) VALUES (?, ?)`,
			profileSlot, name); err != nil {
			return fmt.Errorf("inserting completed course %q: %w", name, err)
		}
	}
	return nil
}

func (r *SQLiteStudentProfileRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM completed_courses WHERE profile_slot = ?`, profileSlot); err != nil {
		return fmt.Errorf("clearing completed courses: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM student_profiles WHERE slot = ?`, profileSlot); err != nil {
		return fmt.Errorf("clearing student profile: %w", err)
	}
	return nil
}
