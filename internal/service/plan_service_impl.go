package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/daehakro/courseplan/internal/catalog"
	"github.com/daehakro/courseplan/internal/domain"
	"github.com/daehakro/courseplan/internal/scoring"
)

const (
	// electiveLimit caps recommended electives per term at a realistic
	// course load.
	electiveLimit = 3

	// fallbackLimit caps the last-resort picks when nothing scores at all.
	fallbackLimit = 2

	// PinnedScore keeps mandatory-foundation courses above every possible
	// elective score, strategic bonus included.
	PinnedScore = 1000.0
)

type planService struct {
	catalog  *catalog.Catalog
	strategy scoring.Strategy
	observer UseCaseObserver
	now      func() time.Time
}

// NewPlanService wires the recommendation pipeline over the given catalog
// and scoring strategy.
func NewPlanService(cat *catalog.Catalog, strategy scoring.Strategy, observers ...UseCaseObserver) PlanService {
	return &planService{
		catalog:  cat,
		strategy: strategy,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *planService) Recommend(ctx context.Context, profile domain.StudentProfile) (*domain.RecommendationPlan, error) {
	start := s.now()
	completed := profile.CompletedSet()
	currentIdx := profile.CurrentTerm.Index()

	plan := &domain.RecommendationPlan{
		GeneratedAt: start,
		Strategy:    s.strategy.Name(),
	}
	plan.MissedMandatory = s.missedMandatory(completed, currentIdx)

	// The final term is never planned: there is no later term a
	// recommendation could prepare for.
	for idx := currentIdx; idx <= domain.PenultimateTermIndex; idx++ {
		tp := s.planTerm(profile, completed, idx)
		if len(tp.Courses) == 0 {
			continue
		}
		plan.Terms = append(plan.Terms, tp)
		if idx == currentIdx {
			plan.CurrentTermCourses = tp.Courses
		}
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan.recommend",
		Duration:  s.now().Sub(start),
		Success:   true,
		StartedAt: start,
		Fields: map[string]any{
			"strategy":         string(s.strategy.Name()),
			"current_term":     profile.CurrentTerm.String(),
			"planned_terms":    len(plan.Terms),
			"missed_mandatory": len(plan.MissedMandatory),
		},
	})
	return plan, nil
}

// candidate reports whether a course is still plannable for this student:
// not completed, not retired, and already part of the student's curriculum
// revision.
func (s *planService) candidate(course domain.Course, completed map[string]bool, currentIdx int) bool {
	if completed[course.Name] {
		return false
	}
	if s.catalog.IsRetired(course.Name) {
		return false
	}
	if course.IntroducedFromTerm > 0 && currentIdx > course.IntroducedFromTerm {
		return false
	}
	return true
}

func (s *planService) planTerm(profile domain.StudentProfile, completed map[string]bool, idx int) domain.TermPlan {
	term := domain.TermFromIndex(idx)
	currentIdx := profile.CurrentTerm.Index()

	var mandatory []domain.Course
	var electives []scoring.Result
	for _, course := range s.catalog.AtTermIndex(idx) {
		if !s.candidate(course, completed, currentIdx) {
			continue
		}
		if course.IsMandatory() {
			mandatory = append(mandatory, course)
			continue
		}
		electives = append(electives, s.strategy.Score(scoring.Input{
			Course:    course,
			Interests: profile.RankedInterestAreas,
			Completed: completed,
			Term:      term,
		}))
	}

	tp := domain.TermPlan{Term: term}
	sortCoursesByName(mandatory)
	for _, m := range mandatory {
		tp.Courses = append(tp.Courses, domain.ScoredCourse{
			Course:     m,
			FinalScore: PinnedScore,
			Pick:       domain.PickMandatory,
			Reasons: []domain.Reason{{
				Code:    domain.ReasonMandatoryFoundation,
				Message: "전공기초 필수 과목",
			}},
		})
	}
	tp.Courses = append(tp.Courses, selectElectives(electives)...)
	return tp
}

// selectElectives applies the eligibility filter, then falls back in two
// stages so a sparse catalog still yields picks: first any positively
// weighted score, then the top courses regardless of score.
func selectElectives(results []scoring.Result) []domain.ScoredCourse {
	eligible := make([]scoring.Result, 0, len(results))
	for _, r := range results {
		if r.Eligible {
			eligible = append(eligible, r)
		}
	}
	if len(eligible) > 0 {
		return takeTop(eligible, electiveLimit, domain.PickFiltered, false)
	}

	scored := make([]scoring.Result, 0, len(results))
	for _, r := range results {
		if r.Course.HasWeights() && r.Score > 0 {
			scored = append(scored, r)
		}
	}
	if len(scored) > 0 {
		return takeTop(scored, electiveLimit, domain.PickFallbackScored, false)
	}

	return takeTop(results, fallbackLimit, domain.PickFallbackAny, true)
}

func takeTop(results []scoring.Result, limit int, pick domain.PickSource, markFallback bool) []domain.ScoredCourse {
	scoring.CanonicalSort(results)
	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]domain.ScoredCourse, 0, len(results))
	for _, r := range results {
		sc := domain.ScoredCourse{
			Course:        r.Course,
			Score:         r.Score,
			FinalScore:    r.FinalScore,
			PrimaryWeight: r.PrimaryWeight,
			IsStrategic:   r.IsStrategic,
			Pick:          pick,
			Reasons:       r.Reasons,
		}
		if markFallback {
			sc.Reasons = append(sc.Reasons, domain.Reason{
				Code:    domain.ReasonFallbackPick,
				Message: "관심분야 적합 과목이 없어 기본 추천",
			})
		}
		out = append(out, sc)
	}
	return out
}

// missedMandatory scans terms before the current one for mandatory
// foundation courses the student has not completed.
func (s *planService) missedMandatory(completed map[string]bool, currentIdx int) []domain.MissedMandatory {
	var missed []domain.MissedMandatory
	for _, course := range s.catalog.Courses() {
		if course.Term.Index() >= currentIdx {
			continue
		}
		if !course.IsMandatory() {
			continue
		}
		if !s.candidate(course, completed, currentIdx) {
			continue
		}
		missed = append(missed, domain.MissedMandatory{Course: course})
	}
	sort.SliceStable(missed, func(i, j int) bool {
		a, b := missed[i].Course, missed[j].Course
		if a.Term.Index() != b.Term.Index() {
			return a.Term.Index() < b.Term.Index()
		}
		return a.Name < b.Name
	})
	return missed
}

func sortCoursesByName(courses []domain.Course) {
	col := collate.New(language.Korean)
	sort.SliceStable(courses, func(i, j int) bool {
		return col.CompareString(courses[i].Name, courses[j].Name) < 0
	})
}
