package repository

import (
	"context"
	"errors"

	"github.com/daehakro/courseplan/internal/domain"
)

// ErrNotFound marks lookups with no matching row. Callers match it with
// errors.Is.
var ErrNotFound = errors.New("not found")

// StudentProfileRepo persists the single local student profile. Only the
// inputs are stored; recommendation output is recomputed on every run.
type StudentProfileRepo interface {
	Get(ctx context.Context) (*domain.StudentProfile, error)
	Upsert(ctx context.Context, p *domain.StudentProfile) error
	Clear(ctx context.Context) error
}
