package scoring

import (
	"fmt"

	"github.com/daehakro/courseplan/internal/catalog"
	"github.com/daehakro/courseplan/internal/domain"
)

// WeightedStrategy is the relaxed-filter weighted formula: rank-weighted
// interest scores, a loose two-clause eligibility filter, and a look-ahead
// bonus for courses that unlock later core courses. Courses without a weight
// table fall back to the static roadmap score.
type WeightedStrategy struct {
	catalog *catalog.Catalog
	obs     Observer
}

func NewWeightedStrategy(cat *catalog.Catalog, obs Observer) *WeightedStrategy {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &WeightedStrategy{catalog: cat, obs: obs}
}

func (s *WeightedStrategy) Name() domain.StrategyName {
	return domain.StrategyWeighted
}

func (s *WeightedStrategy) Score(in Input) Result {
	interests := in.rankedInterests()
	r := Result{Course: in.Course}
	if len(interests) > 0 {
		r.PrimaryWeight = in.Course.Weight(interests[0])
	}

	if !in.Course.HasWeights() {
		// Legacy entry: no weight table, scored only through the roadmap.
		// The strategic bonus never applies here.
		r.Score = roadmapScore(s.catalog, in, &r.Reasons)
		r.FinalScore = r.Score
		r.Eligible = in.Course.AlwaysRecommend
		if in.Course.AlwaysRecommend {
			r.Reasons = append(r.Reasons, domain.Reason{
				Code:    domain.ReasonAlwaysRecommended,
				Message: "학과 공통 추천 과목",
			})
		}
		return r
	}

	var sumPriority float64
	for rank, area := range interests {
		w := in.Course.Weight(area)
		r.Score += rankWeights[rank] * float64(w)
		sumPriority += rankWeights[rank]
	}
	if sumPriority > 0 {
		r.Normalized = r.Score / (float64(domain.MaxInterestWeight) * sumPriority)
	}

	r.Eligible = in.Course.AlwaysRecommend
	if r.PrimaryWeight >= strongPrimaryWeight {
		r.Eligible = true
		r.Reasons = append(r.Reasons, domain.Reason{
			Code:    domain.ReasonPrimaryInterest,
			Message: fmt.Sprintf("1순위 관심분야(%s) 핵심 연관 과목", interests[0]),
		})
	}
	if len(interests) >= 2 && in.Course.Weight(interests[1]) == domain.MaxInterestWeight {
		r.Eligible = true
		r.Reasons = append(r.Reasons, domain.Reason{
			Code:    domain.ReasonSecondaryCore,
			Message: fmt.Sprintf("2순위 관심분야(%s) 핵심 과목", interests[1]),
		})
	}
	if in.Course.AlwaysRecommend && len(r.Reasons) == 0 {
		r.Reasons = append(r.Reasons, domain.Reason{
			Code:    domain.ReasonAlwaysRecommended,
			Message: "학과 공통 추천 과목",
		})
	}

	r.FinalScore = r.Score
	if bonus, unlocks := s.lookaheadBonus(in, interests); bonus > 0 {
		r.FinalScore += bonus
		r.IsStrategic = true
		// A bridge course must survive the filter even when its own
		// weights are weak; surfacing it early is the whole point.
		r.Eligible = true
		r.Reasons = append(r.Reasons, domain.Reason{
			Code:    domain.ReasonStrategicBridge,
			Message: fmt.Sprintf("%s 수강을 위한 선수 과목", unlocks),
		})
	}

	s.obs.Debug("course_scored", map[string]any{
		"course":     in.Course.Name,
		"term":       in.Term.String(),
		"score":      r.Score,
		"final":      r.FinalScore,
		"normalized": r.Normalized,
		"eligible":   r.Eligible,
		"strategic":  r.IsStrategic,
	})
	return r
}

// lookaheadBonus awards the fixed bonus when the course is a prerequisite of
// a not-yet-completed core course (top-interest weight 3) in a later term.
// Only the top-ranked interest area is considered.
func (s *WeightedStrategy) lookaheadBonus(in Input, interests []domain.InterestArea) (float64, string) {
	if len(interests) == 0 {
		return 0, ""
	}
	primary := interests[0]
	for _, future := range s.catalog.Courses() {
		if future.Term.Index() <= in.Term.Index() {
			continue
		}
		if in.Completed[future.Name] {
			continue
		}
		if future.Weight(primary) != domain.MaxInterestWeight {
			continue
		}
		if future.RequiresPrerequisite(in.Course.Name) {
			return StrategicBonus, future.Name
		}
	}
	return 0, ""
}
