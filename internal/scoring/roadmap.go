package scoring

import (
	"fmt"

	"github.com/daehakro/courseplan/internal/catalog"
	"github.com/daehakro/courseplan/internal/domain"
)

// roadmapScore is the flat rank-weighted roadmap match: for each ranked
// interest whose static roadmap lists the course at this term, add the flat
// weight for that rank.
func roadmapScore(cat *catalog.Catalog, in Input, reasons *[]domain.Reason) float64 {
	var score float64
	for rank, area := range in.rankedInterests() {
		if !cat.OnRoadmap(area, in.Term.Index(), in.Course.Name) {
			continue
		}
		score += roadmapRankWeights[rank]
		if reasons != nil {
			*reasons = append(*reasons, domain.Reason{
				Code:    domain.ReasonRoadmapMatch,
				Message: fmt.Sprintf("%s 로드맵 %s 과목", area, in.Term),
			})
		}
	}
	return score
}

// RoadmapStrategy is the historical case-table variant expressed as a
// configuration of the same interface: listed courses score their flat rank
// weight, everything else scores zero. No look-ahead bonus.
type RoadmapStrategy struct {
	catalog *catalog.Catalog
	obs     Observer
}

func NewRoadmapStrategy(cat *catalog.Catalog, obs Observer) *RoadmapStrategy {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &RoadmapStrategy{catalog: cat, obs: obs}
}

func (s *RoadmapStrategy) Name() domain.StrategyName {
	return domain.StrategyRoadmap
}

func (s *RoadmapStrategy) Score(in Input) Result {
	r := Result{Course: in.Course}
	if interests := in.rankedInterests(); len(interests) > 0 {
		r.PrimaryWeight = in.Course.Weight(interests[0])
	}

	r.Score = roadmapScore(s.catalog, in, &r.Reasons)
	r.FinalScore = r.Score
	r.Eligible = r.Score > 0 || in.Course.AlwaysRecommend
	if in.Course.AlwaysRecommend && len(r.Reasons) == 0 {
		r.Reasons = append(r.Reasons, domain.Reason{
			Code:    domain.ReasonAlwaysRecommended,
			Message: "학과 공통 추천 과목",
		})
	}

	s.obs.Debug("course_scored", map[string]any{
		"course":   in.Course.Name,
		"term":     in.Term.String(),
		"score":    r.Score,
		"eligible": r.Eligible,
	})
	return r
}
