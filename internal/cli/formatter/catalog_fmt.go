package formatter

import (
	"fmt"
	"strings"

	"github.com/daehakro/courseplan/internal/domain"
)

// FormatCourseList renders a compact course table grouped by term.
func FormatCourseList(courses []domain.Course) string {
	headers := []string{"학기", "과목명", "구분", "학점", "선수과목"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			c.Term.String(),
			StyleBold.Render(c.Name),
			CategoryStyle(c.Category).Render(string(c.Category)),
			c.Credits,
			Dim(strings.Join(c.Prerequisites, ", ")),
		})
	}
	return RenderTable(headers, rows)
}

// FormatCourseDetail renders one course in full.
func FormatCourseDetail(c domain.Course, replacedBy []string, followUps []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n",
		StyleBold.Render(c.Name), CategoryStyle(c.Category).Render(string(c.Category))))
	if c.Code != "" {
		b.WriteString(Dim(c.Code) + "\n")
	}
	b.WriteString(fmt.Sprintf("개설 학기: %s   학점: %s (강의 %d, 실습 %d)\n",
		c.Term, c.Credits, c.LectureHours, c.LabHours))

	if c.Description != "" {
		b.WriteString("\n" + c.Description + "\n")
	}

	if len(c.Prerequisites) > 0 {
		b.WriteString(fmt.Sprintf("\n선수과목: %s\n", strings.Join(c.Prerequisites, ", ")))
	}
	if len(followUps) > 0 {
		b.WriteString(fmt.Sprintf("후속과목: %s\n", strings.Join(followUps, ", ")))
	}

	if len(c.InterestWeights) > 0 {
		b.WriteString("\n" + StyleHeader.Render("관심분야 연관도") + "\n")
		for _, area := range domain.KnownInterestAreas {
			if w := c.Weight(area); w > 0 {
				b.WriteString(fmt.Sprintf("  %-14s %s\n", area, weightBar(w)))
			}
		}
	}

	if len(replacedBy) > 0 {
		b.WriteString("\n" + StyleYellow.Render(
			fmt.Sprintf("⚠ 폐지된 과목입니다. 대체 과목: %s", strings.Join(replacedBy, ", "))))
		b.WriteString("\n")
	}
	return b.String()
}

func weightBar(w int) string {
	filled := strings.Repeat("●", w)
	empty := strings.Repeat("○", domain.MaxInterestWeight-w)
	return StyleGreen.Render(filled) + Dim(empty)
}
