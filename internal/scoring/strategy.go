// Package scoring computes per-course relevance scores for a student's
// ranked interest areas. Two strategies share one interface: the weighted
// relaxed-filter strategy (default) and the flat roadmap variant.
package scoring

import (
	"github.com/daehakro/courseplan/internal/catalog"
	"github.com/daehakro/courseplan/internal/domain"
)

// Priority weights by interest rank. The first list drives the weighted
// formula, the second the flat roadmap match.
var (
	rankWeights        = []float64{1.0, 0.7, 0.4}
	roadmapRankWeights = []float64{1.0, 0.6, 0.3}
)

const (
	// StrategicBonus is added to a course that unlocks a core course in a
	// later term.
	StrategicBonus = 50.0

	// strongPrimaryWeight is the minimum weight against the top interest
	// for the relaxed eligibility filter.
	strongPrimaryWeight = 2
)

// Input carries everything needed to score one course for one student.
type Input struct {
	Course domain.Course

	// Interests is the student's ranked list, most important first, 0-3
	// entries. Extra entries beyond three are ignored.
	Interests []domain.InterestArea

	// Completed is the set of finished course names; only the look-ahead
	// bonus consults it.
	Completed map[string]bool

	// Term is the term being evaluated (not necessarily the student's
	// current term when planning ahead).
	Term domain.Term
}

func (in Input) rankedInterests() []domain.InterestArea {
	if len(in.Interests) > domain.MaxRankedInterests {
		return in.Interests[:domain.MaxRankedInterests]
	}
	return in.Interests
}

// Result is the scored view of one course.
type Result struct {
	Course domain.Course

	// Score is the base relevance score (weighted or roadmap fallback).
	Score float64

	// Normalized is Score divided by its theoretical maximum, for threshold
	// comparisons; 0 when no interests are ranked.
	Normalized float64

	// FinalScore is Score plus the strategic bonus, if any.
	FinalScore float64

	// PrimaryWeight is the weight against the top-ranked interest.
	PrimaryWeight int

	IsStrategic bool

	// Eligible reports the relaxed filter: strong relevance to the top
	// interest, core for the second, a strategic bridge, or an
	// always-recommend flag.
	Eligible bool

	Reasons []domain.Reason
}

// Strategy scores one course; implementations are pure over the catalog.
type Strategy interface {
	Name() domain.StrategyName
	Score(in Input) Result
}

// ForCatalog returns the strategy the catalog artifact selected.
func ForCatalog(cat *catalog.Catalog, obs Observer) Strategy {
	if obs == nil {
		obs = NoopObserver{}
	}
	if cat.Strategy() == domain.StrategyRoadmap {
		return NewRoadmapStrategy(cat, obs)
	}
	return NewWeightedStrategy(cat, obs)
}
