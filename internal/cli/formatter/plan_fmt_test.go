package formatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daehakro/courseplan/internal/domain"
	"github.com/daehakro/courseplan/internal/graph"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func scored(name string, category domain.CourseCategory, pick domain.PickSource, score float64) domain.ScoredCourse {
	return domain.ScoredCourse{
		Course:     domain.Course{Name: name, Category: category, Term: domain.Term{Year: 2, Semester: 1}},
		FinalScore: score,
		Pick:       pick,
	}
}

func TestFormatPlanRendersTermsAndStrategy(t *testing.T) {
	plan := &domain.RecommendationPlan{
		Strategy: domain.StrategyWeighted,
		Terms: []domain.TermPlan{
			{
				Term: domain.Term{Year: 2, Semester: 1},
				Courses: []domain.ScoredCourse{
					scored("공업수학1", domain.CategoryMajorFoundation, domain.PickMandatory, 1000),
					scored("데이터구조론", domain.CategoryMajorCore, domain.PickFiltered, 3.7),
				},
			},
			{
				Term: domain.Term{Year: 2, Semester: 2},
				Courses: []domain.ScoredCourse{
					scored("응용통계학", domain.CategoryMajorCore, domain.PickFiltered, 3.0),
				},
			},
		},
	}

	out := stripANSI(FormatPlan(plan))
	assert.Contains(t, out, "2-1 추천 과목 (이번 학기)")
	assert.Contains(t, out, "2-2 추천 과목")
	assert.Contains(t, out, "공업수학1")
	assert.Contains(t, out, "데이터구조론")
	assert.Contains(t, out, "3.7")
	assert.Contains(t, out, "전략: weighted")
	// Mandatory courses hide the artificial pin score.
	assert.NotContains(t, out, "1000")
}

func TestFormatPlanShowsMissedMandatoryWarning(t *testing.T) {
	plan := &domain.RecommendationPlan{
		Strategy: domain.StrategyWeighted,
		MissedMandatory: []domain.MissedMandatory{
			{Course: domain.Course{
				Name:     "미분적분학1",
				Category: domain.CategoryMajorFoundation,
				Term:     domain.Term{Year: 1, Semester: 1},
			}},
		},
		Terms: []domain.TermPlan{{
			Term:    domain.Term{Year: 2, Semester: 2},
			Courses: []domain.ScoredCourse{scored("응용통계학", domain.CategoryMajorCore, domain.PickFiltered, 3.0)},
		}},
	}

	out := stripANSI(FormatPlan(plan))
	assert.Contains(t, out, "미이수 전공기초 필수 과목")
	assert.Contains(t, out, "미분적분학1")
	assert.Contains(t, out, "(1-1 개설)")
}

func TestFormatPlanEmpty(t *testing.T) {
	plan := &domain.RecommendationPlan{Strategy: domain.StrategyWeighted}
	out := stripANSI(FormatPlan(plan))
	assert.Contains(t, out, "추천할 학기가 없습니다")
}

func TestFormatPathResult(t *testing.T) {
	res := graph.PathResult{Paths: [][]string{
		{"미분적분학1", "미분적분학2", "수치해석"},
		{"확률통계론", "수치해석"},
	}}
	completed := map[string]bool{"미분적분학1": true}

	out := stripANSI(FormatPathResult("수치해석", res, completed, nil))
	assert.Contains(t, out, "수치해석 수강 경로")
	assert.Contains(t, out, "미분적분학1")
	assert.Contains(t, out, "→")
	assert.NotContains(t, out, "순환 참조")
}

func TestFormatPathResultWarnsOnCycles(t *testing.T) {
	res := graph.PathResult{CyclesDetected: true}
	out := stripANSI(FormatPathResult("가과목", res, nil, nil))
	assert.Contains(t, out, "경로 없음")
	assert.Contains(t, out, "순환 참조")
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"과목명", "학점"},
		[][]string{{"데이터구조론", "3"}, {"품질공학", "3"}},
	))
	assert.Contains(t, out, "과목명")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "데이터구조론")
}
