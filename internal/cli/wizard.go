package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/daehakro/courseplan/internal/cli/formatter"
	"github.com/daehakro/courseplan/internal/domain"
)

// courseplanHuhTheme returns a custom huh theme using the Gruvbox palette.
func courseplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

const noInterestOption = ""

// runIntakeWizard collects the student profile interactively and offers to
// save it for later runs.
func runIntakeWizard(ctx context.Context, app *App) (*domain.StudentProfile, error) {
	var (
		termValue string
		first     string
		second    string
		third     string
		careers   string
		completed []string
		save      bool
	)

	termOptions := make([]huh.Option[string], 0, len(domain.AllTerms()))
	for _, term := range domain.AllTerms() {
		termOptions = append(termOptions, huh.NewOption(term.String(), term.String()))
	}

	interestOptions := func(allowNone bool) []huh.Option[string] {
		opts := make([]huh.Option[string], 0, len(domain.KnownInterestAreas)+1)
		if allowNone {
			opts = append(opts, huh.NewOption("(없음)", noInterestOption))
		}
		for _, area := range domain.KnownInterestAreas {
			opts = append(opts, huh.NewOption(string(area), string(area)))
		}
		return opts
	}

	courseOptions := make([]huh.Option[string], 0, app.Catalog.Len())
	for _, course := range app.Catalog.Courses() {
		if app.Catalog.IsRetired(course.Name) {
			continue
		}
		label := fmt.Sprintf("%s (%s)", course.Name, course.Term)
		courseOptions = append(courseOptions, huh.NewOption(label, course.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("현재 학기").
				Options(termOptions...).
				Value(&termValue),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("1순위 관심 분야").
				Options(interestOptions(true)...).
				Value(&first),
			huh.NewSelect[string]().
				Title("2순위 관심 분야").
				Options(interestOptions(true)...).
				Value(&second),
			huh.NewSelect[string]().
				Title("3순위 관심 분야").
				Options(interestOptions(true)...).
				Value(&third),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("희망 진로").
				Description("쉼표로 구분해 입력 (선택 사항)").
				Value(&careers),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("이수한 과목").
				Options(courseOptions...).
				Value(&completed),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("이 프로필을 저장할까요?").
				Affirmative("저장").
				Negative("이번만 사용").
				Value(&save),
		),
	).WithTheme(courseplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("running intake wizard: %w", err)
	}

	profile, err := buildWizardProfile(termValue, []string{first, second, third}, careers, completed)
	if err != nil {
		return nil, err
	}

	if save {
		if err := app.Profiles.Save(ctx, profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// buildWizardProfile maps raw form answers onto a profile. Interest picks
// keep their rank order, with the "(없음)" option and repeats dropped.
func buildWizardProfile(termValue string, interests []string, careers string, completed []string) (*domain.StudentProfile, error) {
	term, err := domain.ParseTerm(termValue)
	if err != nil {
		return nil, err
	}

	profile := &domain.StudentProfile{
		CurrentTerm:      term,
		CompletedCourses: completed,
	}
	seen := make(map[string]bool, len(interests))
	for _, raw := range interests {
		if raw == noInterestOption || seen[raw] {
			continue
		}
		seen[raw] = true
		profile.RankedInterestAreas = append(profile.RankedInterestAreas, domain.InterestArea(raw))
	}
	for _, path := range strings.Split(careers, ",") {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			profile.RankedCareerPaths = append(profile.RankedCareerPaths, trimmed)
		}
	}
	return profile, nil
}
