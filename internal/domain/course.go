package domain

// MaxInterestWeight is the top of the relevance scale: 3 marks a core course
// for an interest area, 0 (or absence) marks no relation.
const MaxInterestWeight = 3

// Course is one offering in the curriculum. The name is the graph key; the
// domain has no separate numeric ID.
type Course struct {
	Name         string
	Code         string
	Category     CourseCategory
	Term         Term
	// Credits keeps the transcript's raw "credit-hours" range form,
	// e.g. "3.00-4.00".
	Credits      string
	LectureHours int
	LabHours     int
	Description  string

	// Prerequisites lists course names that must be completed first.
	// Empty for leaf courses.
	Prerequisites []string

	// InterestWeights maps interest area to relevance strength (0-3).
	// Nil for legacy entries that are scored through the roadmap fallback.
	InterestWeights map[InterestArea]int

	// Replaces names retired courses this offering superseded; the retired
	// names are never recommendable while this course exists.
	Replaces []string

	// IntroducedFromTerm, when non-zero, is the term index from which the
	// course exists in the curriculum. Students whose current term is already
	// past it are not asked to reach back for it.
	IntroducedFromTerm int

	// AlwaysRecommend marks a de facto requirement that bypasses the
	// eligibility filter without carrying the mandatory-foundation tag
	// (the program's introductory survey course).
	AlwaysRecommend bool
}

// Weight returns the course's relevance to the given area, 0 when the course
// has no weight table or the area is absent from it.
func (c *Course) Weight(area InterestArea) int {
	if c.InterestWeights == nil {
		return 0
	}
	return c.InterestWeights[area]
}

// HasWeights reports whether the course carries an interest-weight table.
func (c *Course) HasWeights() bool {
	return len(c.InterestWeights) > 0
}

// IsMandatory reports whether the course is a mandatory-foundation course.
func (c *Course) IsMandatory() bool {
	return c.Category == CategoryMajorFoundation
}

// RequiresPrerequisite reports whether name appears in the prerequisite list.
func (c *Course) RequiresPrerequisite(name string) bool {
	for _, p := range c.Prerequisites {
		if p == name {
			return true
		}
	}
	return false
}
