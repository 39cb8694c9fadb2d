package cli

import (
	"github.com/spf13/cobra"

	"github.com/daehakro/courseplan/internal/catalog"
	"github.com/daehakro/courseplan/internal/graph"
	"github.com/daehakro/courseplan/internal/service"
)

// App holds references to everything CLI commands need.
type App struct {
	Plans    service.PlanService
	Profiles service.ProfileService
	Catalog  *catalog.Catalog
	Graph    *graph.Service

	// IsInteractive reports whether stdin is a terminal; the intake wizard
	// only runs interactively.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "courseplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "courseplan",
		Short: "산업공학과 수강 추천 도우미",
		Long: "courseplan은 학생의 학기, 관심 분야, 이수 내역을 바탕으로\n" +
			"남은 학기의 수강 과목을 추천합니다.",
	}

	root.AddCommand(
		newPlanCmd(app),
		newProfileCmd(app),
		newPathCmd(app),
		newRelationCmd(app),
		newCatalogCmd(app),
	)

	return root
}
