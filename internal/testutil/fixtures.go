package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/daehakro/courseplan/internal/catalog"
	"github.com/daehakro/courseplan/internal/domain"
)

// Course options
type CourseOption func(*domain.Course)

func WithCategory(c domain.CourseCategory) CourseOption {
	return func(course *domain.Course) {
		course.Category = c
	}
}

func WithPrerequisites(names ...string) CourseOption {
	return func(course *domain.Course) {
		course.Prerequisites = names
	}
}

func WithWeights(weights map[domain.InterestArea]int) CourseOption {
	return func(course *domain.Course) {
		course.InterestWeights = weights
	}
}

func WithAlwaysRecommend() CourseOption {
	return func(course *domain.Course) {
		course.AlwaysRecommend = true
	}
}

func WithReplaces(names ...string) CourseOption {
	return func(course *domain.Course) {
		course.Replaces = names
	}
}

func WithIntroducedFrom(termIdx int) CourseOption {
	return func(course *domain.Course) {
		course.IntroducedFromTerm = termIdx
	}
}

// NewTestCourse builds an elective core course at the given term.
func NewTestCourse(name string, year, semester int, opts ...CourseOption) domain.Course {
	c := domain.Course{
		Name:     name,
		Category: domain.CategoryMajorCore,
		Term:     domain.Term{Year: year, Semester: semester},
		Credits:  "3.00-3.00",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestCatalog builds a catalog from the given courses, failing the
// construction errors back to the caller via panic; tests feed it valid
// course sets.
func NewTestCatalog(courses []domain.Course, opts ...catalog.Option) *catalog.Catalog {
	cat, err := catalog.New(courses, opts...)
	if err != nil {
		panic(err)
	}
	return cat
}

// Profile options
type ProfileOption func(*domain.StudentProfile)

func WithInterests(areas ...domain.InterestArea) ProfileOption {
	return func(p *domain.StudentProfile) {
		p.RankedInterestAreas = areas
	}
}

func WithCompleted(names ...string) ProfileOption {
	return func(p *domain.StudentProfile) {
		p.CompletedCourses = names
	}
}

func WithCareerPaths(paths ...string) ProfileOption {
	return func(p *domain.StudentProfile) {
		p.RankedCareerPaths = paths
	}
}

// NewTestProfile builds a student profile at the given current term.
func NewTestProfile(year, semester int, opts ...ProfileOption) domain.StudentProfile {
	now := time.Now().UTC()
	p := domain.StudentProfile{
		ID:          uuid.New().String(),
		CurrentTerm: domain.Term{Year: year, Semester: semester},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
