// Package catalog holds the course catalog: static reference data loaded once
// per process and treated as immutable thereafter. All accessors are safe for
// concurrent readers.
package catalog

import (
	"fmt"

	"github.com/daehakro/courseplan/internal/domain"
)

// Catalog is the validated, immutable course database plus the per-interest
// roadmap tables used by the fallback scorer.
type Catalog struct {
	courses  []domain.Course
	byName   map[string]int
	retired  map[string][]string // retired course name -> successor names
	roadmaps map[domain.InterestArea]map[int][]string
	strategy domain.StrategyName
	warnings []string
}

// Option configures a Catalog under construction.
type Option func(*Catalog)

// WithStrategy selects the scoring strategy for this catalog.
func WithStrategy(s domain.StrategyName) Option {
	return func(c *Catalog) { c.strategy = s }
}

// WithRoadmap records the static roadmap course list for one area and term.
func WithRoadmap(area domain.InterestArea, term domain.Term, names ...string) Option {
	return func(c *Catalog) {
		if c.roadmaps[area] == nil {
			c.roadmaps[area] = make(map[int][]string)
		}
		c.roadmaps[area][term.Index()] = append(c.roadmaps[area][term.Index()], names...)
	}
}

// New validates the course list and builds a Catalog. Structural defects in
// the artifact (duplicate names, unknown categories, out-of-range terms) are
// errors; dangling references degrade to warnings and are skipped at use.
func New(courses []domain.Course, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		courses:  courses,
		byName:   make(map[string]int, len(courses)),
		retired:  make(map[string][]string),
		roadmaps: make(map[domain.InterestArea]map[int][]string),
		strategy: domain.StrategyWeighted,
	}
	for _, opt := range opts {
		opt(c)
	}

	for i, course := range courses {
		if course.Name == "" {
			return nil, fmt.Errorf("course %d: empty name", i)
		}
		if _, dup := c.byName[course.Name]; dup {
			return nil, fmt.Errorf("course %q: duplicate name", course.Name)
		}
		if !domain.ValidCategories[course.Category] {
			return nil, fmt.Errorf("course %q: unknown category %q", course.Name, course.Category)
		}
		idx := course.Term.Index()
		if idx < domain.FirstTermIndex || idx > domain.LastTermIndex {
			return nil, fmt.Errorf("course %q: term %s outside curriculum", course.Name, course.Term)
		}
		for area, w := range course.InterestWeights {
			if w < 0 || w > domain.MaxInterestWeight {
				return nil, fmt.Errorf("course %q: weight %d for %q outside 0-%d",
					course.Name, w, area, domain.MaxInterestWeight)
			}
		}
		c.byName[course.Name] = i
	}

	for _, course := range courses {
		for _, p := range course.Prerequisites {
			if _, ok := c.byName[p]; !ok {
				c.warnf("course %q: prerequisite %q not in catalog, ignored", course.Name, p)
			}
		}
		for _, old := range course.Replaces {
			c.retired[old] = append(c.retired[old], course.Name)
		}
	}

	// Roadmap names must resolve; dangling entries are logged and skipped,
	// never fatal.
	for area, byTerm := range c.roadmaps {
		for termIdx, names := range byTerm {
			kept := names[:0]
			for _, n := range names {
				if _, ok := c.byName[n]; !ok {
					c.warnf("roadmap %s term %s: course %q not in catalog, skipped",
						area, domain.TermFromIndex(termIdx), n)
					continue
				}
				kept = append(kept, n)
			}
			byTerm[termIdx] = kept
		}
	}

	return c, nil
}

func (c *Catalog) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Courses returns all courses in catalog order. Callers must not mutate.
func (c *Catalog) Courses() []domain.Course {
	return c.courses
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Get looks a course up by name.
func (c *Catalog) Get(name string) (domain.Course, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Course{}, false
	}
	return c.courses[i], true
}

// AtTermIndex returns the courses offered exactly at the given term index,
// in catalog order.
func (c *Catalog) AtTermIndex(idx int) []domain.Course {
	var out []domain.Course
	for _, course := range c.courses {
		if course.Term.Index() == idx {
			out = append(out, course)
		}
	}
	return out
}

// IsRetired reports whether the named course was superseded by a merged
// successor and must never be recommended.
func (c *Catalog) IsRetired(name string) bool {
	return len(c.retired[name]) > 0
}

// ReplacedBy returns the successors of a retired course name.
func (c *Catalog) ReplacedBy(name string) []string {
	return c.retired[name]
}

// OnRoadmap reports whether the named course appears on the static roadmap
// for the given area and term.
func (c *Catalog) OnRoadmap(area domain.InterestArea, termIdx int, name string) bool {
	for _, n := range c.roadmaps[area][termIdx] {
		if n == name {
			return true
		}
	}
	return false
}

// RoadmapCourses returns the roadmap course names for one area and term.
func (c *Catalog) RoadmapCourses(area domain.InterestArea, termIdx int) []string {
	return c.roadmaps[area][termIdx]
}

// Strategy returns the scoring strategy selected for this catalog.
func (c *Catalog) Strategy() domain.StrategyName {
	return c.strategy
}

// Warnings returns the non-fatal diagnostics collected during construction.
func (c *Catalog) Warnings() []string {
	return c.warnings
}
