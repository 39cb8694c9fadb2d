package domain

import "time"

// MaxRankedInterests caps the ranked interest list; order encodes priority.
const MaxRankedInterests = 3

// StudentProfile is the query subject of a recommendation run. The engine
// never mutates it; CompletedCourses changes only through the profile store.
type StudentProfile struct {
	ID          string
	CurrentTerm Term

	// RankedInterestAreas is ordered most-important-first, length 0-3.
	RankedInterestAreas []InterestArea

	// RankedCareerPaths is display-only; it never participates in scoring.
	RankedCareerPaths []string

	CompletedCourses []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCompleted reports whether the named course is already finished.
func (p *StudentProfile) HasCompleted(name string) bool {
	for _, c := range p.CompletedCourses {
		if c == name {
			return true
		}
	}
	return false
}

// CompletedSet returns the completed courses as a lookup set.
func (p *StudentProfile) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(p.CompletedCourses))
	for _, c := range p.CompletedCourses {
		set[c] = true
	}
	return set
}

// PrimaryInterest returns the top-ranked interest area and whether one exists.
func (p *StudentProfile) PrimaryInterest() (InterestArea, bool) {
	if len(p.RankedInterestAreas) == 0 {
		return "", false
	}
	return p.RankedInterestAreas[0], true
}
