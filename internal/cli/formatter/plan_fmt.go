package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daehakro/courseplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(title) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// FormatPlan renders a full recommendation plan: warnings first, then one
// section per planned term.
func FormatPlan(plan *domain.RecommendationPlan) string {
	var b strings.Builder

	if len(plan.MissedMandatory) > 0 {
		b.WriteString(formatMissedMandatory(plan.MissedMandatory))
		b.WriteString("\n")
	}

	if len(plan.Terms) == 0 {
		b.WriteString(Dim("추천할 학기가 없습니다. 수강 가능한 과목이 남아 있지 않습니다.\n"))
		return b.String()
	}

	for i, tp := range plan.Terms {
		title := fmt.Sprintf("%s 추천 과목", tp.Term)
		if i == 0 {
			title = fmt.Sprintf("%s 추천 과목 (이번 학기)", tp.Term)
		}
		b.WriteString(RenderBox(title, formatTermPlan(tp)))
		b.WriteString("\n")
	}

	b.WriteString(Dim(fmt.Sprintf("전략: %s\n", plan.Strategy)))
	return b.String()
}

func formatTermPlan(tp domain.TermPlan) string {
	headers := []string{"", "과목명", "구분", "점수", "추천 사유"}
	rows := make([][]string, 0, len(tp.Courses))
	for _, sc := range tp.Courses {
		rows = append(rows, []string{
			PickIndicator(sc.Pick),
			courseTitle(sc),
			CategoryStyle(sc.Course.Category).Render(string(sc.Course.Category)),
			formatScore(sc),
			reasonSummary(sc.Reasons),
		})
	}
	return RenderTable(headers, rows)
}

func courseTitle(sc domain.ScoredCourse) string {
	title := StyleBold.Render(sc.Course.Name)
	if sc.IsStrategic {
		title += " " + StylePurple.Render("★")
	}
	return title
}

func formatScore(sc domain.ScoredCourse) string {
	if sc.Pick == domain.PickMandatory {
		return Dim("—")
	}
	return fmt.Sprintf("%.1f", sc.FinalScore)
}

func reasonSummary(reasons []domain.Reason) string {
	if len(reasons) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(reasons))
	for _, r := range reasons {
		msgs = append(msgs, r.Message)
	}
	return strings.Join(msgs, ", ")
}

func formatMissedMandatory(missed []domain.MissedMandatory) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render("⚠ 미이수 전공기초 필수 과목"))
	b.WriteString("\n")
	for _, m := range missed {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleYellow.Render("•"),
			StyleBold.Render(m.Course.Name),
			Dim(fmt.Sprintf("(%s 개설)", m.Course.Term))))
	}
	return b.String()
}

// FormatProfile renders the saved student profile.
func FormatProfile(p *domain.StudentProfile) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render("현재 학기:"), p.CurrentTerm))

	if len(p.RankedInterestAreas) > 0 {
		b.WriteString(StyleHeader.Render("관심 분야:"))
		b.WriteString("\n")
		for i, area := range p.RankedInterestAreas {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, area))
		}
	} else {
		b.WriteString(Dim("관심 분야 없음\n"))
	}

	if len(p.RankedCareerPaths) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n",
			StyleHeader.Render("희망 진로:"), strings.Join(p.RankedCareerPaths, ", ")))
	}

	b.WriteString(fmt.Sprintf("%s %d과목\n",
		StyleHeader.Render("이수 과목:"), len(p.CompletedCourses)))
	return b.String()
}
