package service

import (
	"context"

	"github.com/daehakro/courseplan/internal/domain"
)

// PlanService produces course recommendation plans for a student.
type PlanService interface {
	// Recommend builds a full recommendation plan from the student's
	// current term through the second-to-last term of the curriculum.
	Recommend(ctx context.Context, profile domain.StudentProfile) (*domain.RecommendationPlan, error)
}

// ProfileService manages the locally stored student profile.
type ProfileService interface {
	Get(ctx context.Context) (*domain.StudentProfile, error)
	Save(ctx context.Context, profile *domain.StudentProfile) error
	Clear(ctx context.Context) error
}
