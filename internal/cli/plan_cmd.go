package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/daehakro/courseplan/internal/cli/formatter"
	"github.com/daehakro/courseplan/internal/domain"
	"github.com/daehakro/courseplan/internal/service"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		termFlag  string
		interests []string
		completed []string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "남은 학기의 수강 과목을 추천",
		Long: "저장된 프로필 또는 플래그로 지정한 정보를 바탕으로\n" +
			"현재 학기부터 마지막 직전 학기까지의 추천 과목을 출력합니다.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile, err := resolveProfile(ctx, app, cmd.Flags(), termFlag, interests, completed)
			if err != nil {
				return err
			}

			dropped := filterUnknownInterests(profile)
			for _, area := range dropped {
				fmt.Fprintln(cmd.ErrOrStderr(),
					formatter.Dim(fmt.Sprintf("알 수 없는 관심 분야 무시: %s", area)))
			}

			plan, err := app.Plans.Recommend(ctx, *profile)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&termFlag, "term", "", "현재 학기 (예: 2-1)")
	// 관심 분야 이름에 쉼표가 들어가므로 comma-split 없는 array 플래그를 쓴다.
	cmd.Flags().StringArrayVar(&interests, "interest", nil, "관심 분야, 우선순위 순 (최대 3개)")
	cmd.Flags().StringArrayVar(&completed, "completed", nil, "이수한 과목명")

	return cmd
}

// resolveProfile builds the profile for one plan run: explicit flags win,
// then the saved profile, then the interactive wizard.
func resolveProfile(ctx context.Context, app *App, flags *pflag.FlagSet, termFlag string, interests, completed []string) (*domain.StudentProfile, error) {
	if flags.Changed("term") {
		term, err := domain.ParseTerm(termFlag)
		if err != nil {
			return nil, fmt.Errorf("parsing --term: %w", err)
		}
		p := &domain.StudentProfile{
			CurrentTerm:      term,
			CompletedCourses: completed,
		}
		for _, raw := range interests {
			p.RankedInterestAreas = append(p.RankedInterestAreas, domain.InterestArea(raw))
		}
		return p, nil
	}
	if flags.Changed("interest") || flags.Changed("completed") {
		return nil, errors.New("--interest와 --completed는 --term과 함께 사용해야 합니다")
	}

	profile, err := app.Profiles.Get(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, service.ErrNoProfile) {
		return nil, err
	}

	if !app.interactive() {
		return nil, errors.New("저장된 프로필이 없습니다. courseplan profile init을 먼저 실행하거나 --term을 지정하세요")
	}
	return runIntakeWizard(ctx, app)
}

// filterUnknownInterests drops interest areas the catalog does not know,
// returning the dropped names for a warning.
func filterUnknownInterests(p *domain.StudentProfile) []domain.InterestArea {
	known := make(map[domain.InterestArea]bool, len(domain.KnownInterestAreas))
	for _, area := range domain.KnownInterestAreas {
		known[area] = true
	}

	var kept, dropped []domain.InterestArea
	for _, area := range p.RankedInterestAreas {
		if known[area] {
			kept = append(kept, area)
		} else {
			dropped = append(dropped, area)
		}
	}
	p.RankedInterestAreas = kept
	return dropped
}
