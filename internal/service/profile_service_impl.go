package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daehakro/courseplan/internal/domain"
	"github.com/daehakro/courseplan/internal/repository"
)

// ErrNoProfile is returned when no student profile has been saved yet.
var ErrNoProfile = errors.New("no student profile saved")

type profileService struct {
	repo     repository.StudentProfileRepo
	observer UseCaseObserver
	now      func() time.Time
}

// NewProfileService wires profile persistence.
func NewProfileService(repo repository.StudentProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		repo:     repo,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *profileService) Get(ctx context.Context) (*domain.StudentProfile, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("loading student profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Save(ctx context.Context, profile *domain.StudentProfile) error {
	start := s.now()
	if profile.CurrentTerm.IsZero() {
		return errors.New("current term is required")
	}
	if len(profile.RankedInterestAreas) > domain.MaxRankedInterests {
		profile.RankedInterestAreas = profile.RankedInterestAreas[:domain.MaxRankedInterests]
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	now := start.UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	err := s.repo.Upsert(ctx, profile)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "profile.save",
		Duration:  s.now().Sub(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"current_term": profile.CurrentTerm.String(),
			"interests":    len(profile.RankedInterestAreas),
			"completed":    len(profile.CompletedCourses),
		},
	})
	if err != nil {
		return fmt.Errorf("saving student profile: %w", err)
	}
	return nil
}

func (s *profileService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clearing student profile: %w", err)
	}
	return nil
}
