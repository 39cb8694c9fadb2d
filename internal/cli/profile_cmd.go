package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daehakro/courseplan/internal/cli/formatter"
	"github.com/daehakro/courseplan/internal/service"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "학생 프로필 관리",
	}
	cmd.AddCommand(
		newProfileInitCmd(app),
		newProfileShowCmd(app),
		newProfileClearCmd(app),
	)
	return cmd
}

func newProfileInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "대화형으로 프로필 작성",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("profile init은 터미널에서만 실행할 수 있습니다")
			}
			ctx := context.Background()
			profile, err := runIntakeWizard(ctx, app)
			if err != nil {
				return err
			}
			// The wizard only saves on request; init always persists.
			if err := app.Profiles.Save(ctx, profile); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(profile))
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "저장된 프로필 출력",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Profiles.Get(context.Background())
			if err != nil {
				if errors.Is(err, service.ErrNoProfile) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("저장된 프로필이 없습니다."))
					return nil
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(profile))
			return nil
		},
	}
}

func newProfileClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "저장된 프로필 삭제",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "프로필을 삭제했습니다.")
			return nil
		},
	}
}
