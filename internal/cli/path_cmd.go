package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daehakro/courseplan/internal/cli/formatter"
	"github.com/daehakro/courseplan/internal/service"
)

func newPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path <과목명>",
		Short: "특정 과목까지의 선수과목 경로 출력",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if _, ok := app.Catalog.Get(target); !ok {
				return fmt.Errorf("과목을 찾을 수 없습니다: %s", target)
			}

			completed := map[string]bool{}
			if profile, err := app.Profiles.Get(context.Background()); err == nil {
				for _, name := range profile.CompletedCourses {
					completed[name] = true
				}
			} else if !errors.Is(err, service.ErrNoProfile) {
				return err
			}

			res := app.Graph.LearningPaths(target)
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatPathResult(target, res, completed, app.Catalog.Get))
			return nil
		},
	}
}

func newRelationCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "relation <과목명> <과목명>",
		Short: "두 과목의 선후수 관계 출력",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if _, ok := app.Catalog.Get(name); !ok {
					return fmt.Errorf("과목을 찾을 수 없습니다: %s", name)
				}
			}
			rel := app.Graph.RelationOf(args[0], args[1])
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRelation(args[0], args[1], rel))
			return nil
		},
	}
}
