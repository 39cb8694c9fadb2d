package formatter

import (
	"fmt"
	"strings"

	"github.com/daehakro/courseplan/internal/domain"
	"github.com/daehakro/courseplan/internal/graph"
)

const pathArrow = " → "

// FormatPathResult renders every prerequisite chain leading into a course,
// one chain per line, earliest course first. Completed courses are checked
// off, the target is highlighted.
func FormatPathResult(target string, res graph.PathResult, completed map[string]bool, lookup func(string) (domain.Course, bool)) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s 수강 경로", target)))
	b.WriteString("\n\n")

	if len(res.Paths) == 0 {
		b.WriteString(Dim("경로 없음"))
		b.WriteString("\n")
	}
	for _, path := range res.Paths {
		steps := make([]string, 0, len(path))
		for _, name := range path {
			steps = append(steps, pathStep(name, target, completed, lookup))
		}
		b.WriteString("  ")
		b.WriteString(strings.Join(steps, Dim(pathArrow)))
		b.WriteString("\n")
	}

	if res.CyclesDetected {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("⚠ 선수과목 순환 참조가 감지되어 일부 경로가 생략되었습니다"))
		b.WriteString("\n")
	}
	return b.String()
}

func pathStep(name, target string, completed map[string]bool, lookup func(string) (domain.Course, bool)) string {
	label := name
	if lookup != nil {
		if course, ok := lookup(name); ok {
			label = fmt.Sprintf("%s %s", name, Dim("("+course.Term.String()+")"))
		}
	}
	switch {
	case completed[name]:
		return StyleGreen.Render("✔ ") + Dim(label)
	case name == target:
		return StyleBold.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// FormatRelation renders the relationship between two courses.
func FormatRelation(a, b string, rel graph.Relation) string {
	var b1 strings.Builder
	b1.WriteString(StyleHeader.Render(fmt.Sprintf("%s ↔ %s", a, b)))
	b1.WriteString("\n\n")

	switch {
	case rel.IsFollowUp:
		b1.WriteString(fmt.Sprintf("  %s은(는) %s의 선수과목입니다\n", StyleBold.Render(a), StyleBold.Render(b)))
	case rel.IsPrerequisite:
		b1.WriteString(fmt.Sprintf("  %s은(는) %s의 선수과목입니다\n", StyleBold.Render(b), StyleBold.Render(a)))
	default:
		b1.WriteString(Dim("  직접적인 선후수 관계 없음\n"))
	}

	if len(rel.SharedPrerequisites) > 0 {
		b1.WriteString(fmt.Sprintf("  공통 선수과목: %s\n", strings.Join(rel.SharedPrerequisites, ", ")))
	}
	if len(rel.SharedFollowUps) > 0 {
		b1.WriteString(fmt.Sprintf("  공통 후속과목: %s\n", strings.Join(rel.SharedFollowUps, ", ")))
	}
	return b1.String()
}
