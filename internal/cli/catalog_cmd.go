package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daehakro/courseplan/internal/cli/formatter"
	"github.com/daehakro/courseplan/internal/domain"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "교육과정 조회",
	}
	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
	)
	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var termFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "개설 과목 목록 출력",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses := app.Catalog.Courses()
			if cmd.Flags().Changed("term") {
				term, err := domain.ParseTerm(termFlag)
				if err != nil {
					return fmt.Errorf("parsing --term: %w", err)
				}
				courses = app.Catalog.AtTermIndex(term.Index())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseList(courses))
			return nil
		},
	}

	cmd.Flags().StringVar(&termFlag, "term", "", "특정 학기만 출력 (예: 2-1)")
	return cmd
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <과목명>",
		Short: "과목 상세 정보 출력",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, ok := app.Catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("과목을 찾을 수 없습니다: %s", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseDetail(
				course,
				app.Catalog.ReplacedBy(course.Name),
				app.Graph.FollowUps(course.Name),
			))
			return nil
		},
	}
}
