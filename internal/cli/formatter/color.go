package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/daehakro/courseplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders text in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// CategoryStyle returns the style for a course category badge.
func CategoryStyle(category domain.CourseCategory) lipgloss.Style {
	switch category {
	case domain.CategoryMajorFoundation:
		return StyleRed
	case domain.CategoryMajorCore:
		return StyleBlue
	case domain.CategoryMajorAdvanced:
		return StylePurple
	case domain.CategoryGeneralRequired:
		return StyleYellow
	default:
		return StyleDim
	}
}

// PickIndicator returns a colored marker explaining how a course entered
// the plan.
func PickIndicator(pick domain.PickSource) string {
	switch pick {
	case domain.PickMandatory:
		return StyleRed.Render("● 필수")
	case domain.PickFiltered:
		return StyleGreen.Render("● 추천")
	case domain.PickFallbackScored:
		return StyleYellow.Render("● 차선")
	case domain.PickFallbackAny:
		return StyleDim.Render("● 기본")
	default:
		return StyleDim.Render("●")
	}
}
