package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Term identifies one offering term as (year, semester), e.g. 2-1.
type Term struct {
	Year     int
	Semester int
}

const (
	// FirstTermIndex and LastTermIndex bound the four-year curriculum (1-1..4-2).
	FirstTermIndex = 1
	LastTermIndex  = 8

	// PenultimateTermIndex is the last term that still has follow-up terms.
	// Plans stop here: no further courses follow 4-1 in this curriculum.
	PenultimateTermIndex = 7
)

// Index linearizes the term for chronological comparison: 1-1=1 .. 4-2=8.
func (t Term) Index() int {
	return (t.Year-1)*2 + t.Semester
}

func (t Term) String() string {
	return fmt.Sprintf("%d-%d", t.Year, t.Semester)
}

// IsZero reports whether the term is unset.
func (t Term) IsZero() bool {
	return t.Year == 0 && t.Semester == 0
}

// TermFromIndex is the inverse of Index.
func TermFromIndex(idx int) Term {
	return Term{Year: (idx-1)/2 + 1, Semester: (idx-1)%2 + 1}
}

// ParseTerm parses the "Y-S" form used throughout the catalog ("3-1").
func ParseTerm(s string) (Term, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Term{}, fmt.Errorf("term %q: want form \"year-semester\"", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Term{}, fmt.Errorf("term %q: bad year: %w", s, err)
	}
	sem, err := strconv.Atoi(parts[1])
	if err != nil {
		return Term{}, fmt.Errorf("term %q: bad semester: %w", s, err)
	}
	t := Term{Year: year, Semester: sem}
	if year < 1 || year > 4 || sem < 1 || sem > 2 {
		return Term{}, fmt.Errorf("term %q: outside 1-1..4-2", s)
	}
	return t, nil
}

// AllTerms enumerates every term from 1-1 through 4-2 in order.
func AllTerms() []Term {
	terms := make([]Term, 0, LastTermIndex)
	for idx := FirstTermIndex; idx <= LastTermIndex; idx++ {
		terms = append(terms, TermFromIndex(idx))
	}
	return terms
}
