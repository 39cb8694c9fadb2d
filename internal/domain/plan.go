package domain

import "time"

// PickSource records which selection path admitted a course into a plan,
// so cascade picks stay distinguishable from strictly filtered ones.
type PickSource string

const (
	PickMandatory      PickSource = "mandatory"
	PickFiltered       PickSource = "filtered"
	PickFallbackScored PickSource = "fallback_scored"
	PickFallbackAny    PickSource = "fallback_any"
)

// ReasonCode classifies a recommendation reason.
type ReasonCode string

const (
	ReasonMandatoryFoundation ReasonCode = "MANDATORY_FOUNDATION"
	ReasonPrimaryInterest     ReasonCode = "PRIMARY_INTEREST"
	ReasonSecondaryCore       ReasonCode = "SECONDARY_CORE"
	ReasonRoadmapMatch        ReasonCode = "ROADMAP_MATCH"
	ReasonStrategicBridge     ReasonCode = "STRATEGIC_BRIDGE"
	ReasonAlwaysRecommended   ReasonCode = "ALWAYS_RECOMMENDED"
	ReasonFallbackPick        ReasonCode = "FALLBACK_PICK"
)

// Reason explains one contribution to a course's recommendation.
type Reason struct {
	Code    ReasonCode
	Message string
}

// ScoredCourse is the ephemeral output record for one recommended course.
type ScoredCourse struct {
	Course Course

	// Score is the weighted relevance score before any bonus.
	Score float64

	// FinalScore is Score plus the strategic bonus (or the pinned value for
	// mandatory courses).
	FinalScore float64

	// PrimaryWeight is the weight against the top-ranked interest area,
	// used as the second sort key.
	PrimaryWeight int

	// IsStrategic marks a bridge course: low direct score, but prerequisite
	// of a core course in a later term.
	IsStrategic bool

	Pick    PickSource
	Reasons []Reason
}

// TermPlan is the recommended course list for one term.
type TermPlan struct {
	Term    Term
	Courses []ScoredCourse
}

// ElectiveCount counts non-mandatory picks in the term.
func (tp TermPlan) ElectiveCount() int {
	n := 0
	for _, sc := range tp.Courses {
		if sc.Pick != PickMandatory {
			n++
		}
	}
	return n
}

// MissedMandatory warns about a mandatory-foundation course offered before
// the student's current term and still incomplete. Informational only.
type MissedMandatory struct {
	Course Course
}

// RecommendationPlan is the full output of one recommendation run.
type RecommendationPlan struct {
	GeneratedAt time.Time
	Strategy    StrategyName

	// CurrentTermCourses is the plan for the term being planned; empty when
	// the catalog has nothing left to offer in it.
	CurrentTermCourses []ScoredCourse

	// MissedMandatory lists unmet mandatory-foundation courses from earlier
	// terms. It never blocks plan generation.
	MissedMandatory []MissedMandatory

	// Terms covers every non-empty term from the current term through the
	// penultimate term, in chronological order.
	Terms []TermPlan
}

// TermAt returns the plan for the given term index and whether one exists.
func (p *RecommendationPlan) TermAt(idx int) (TermPlan, bool) {
	for _, tp := range p.Terms {
		if tp.Term.Index() == idx {
			return tp, true
		}
	}
	return TermPlan{}, false
}
