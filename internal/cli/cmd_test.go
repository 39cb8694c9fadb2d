package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehakro/courseplan/internal/domain"
	"github.com/daehakro/courseplan/internal/graph"
	"github.com/daehakro/courseplan/internal/repository"
	"github.com/daehakro/courseplan/internal/scoring"
	"github.com/daehakro/courseplan/internal/service"
	"github.com/daehakro/courseplan/internal/testutil"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cat := testutil.NewTestCatalog([]domain.Course{
		testutil.NewTestCourse("미분적분학1", 1, 1, testutil.WithCategory(domain.CategoryMajorFoundation)),
		testutil.NewTestCourse("공업수학1", 2, 1,
			testutil.WithCategory(domain.CategoryMajorFoundation),
			testutil.WithPrerequisites("미분적분학1")),
		testutil.NewTestCourse("데이터구조론", 2, 1, testutil.WithWeights(map[domain.InterestArea]int{
			domain.AreaData: 3, domain.AreaProcess: 1,
		})),
		testutil.NewTestCourse("기계학습", 3, 1,
			testutil.WithWeights(map[domain.InterestArea]int{domain.AreaData: 3}),
			testutil.WithPrerequisites("데이터구조론")),
	})
	database := testutil.NewTestDB(t)

	return &App{
		Plans:    service.NewPlanService(cat, scoring.ForCatalog(cat, nil)),
		Profiles: service.NewProfileService(repository.NewSQLiteStudentProfileRepo(database)),
		Catalog:  cat,
		Graph:    graph.New(cat),
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPlanCmdWithFlags(t *testing.T) {
	app := newTestApp(t)
	out, err := execute(t, app,
		"plan", "--term", "2-1", "--interest", string(domain.AreaData), "--completed", "미분적분학1")
	require.NoError(t, err)
	assert.Contains(t, out, "공업수학1")
	assert.Contains(t, out, "데이터구조론")
	assert.NotContains(t, out, "미이수")
}

func TestPlanCmdRejectsInterestWithoutTerm(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "plan", "--interest", string(domain.AreaData))
	assert.Error(t, err)
}

func TestPlanCmdInvalidTerm(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "plan", "--term", "5-1")
	assert.Error(t, err)
}

func TestPlanCmdWithoutProfileNonInteractive(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "plan")
	assert.ErrorContains(t, err, "profile init")
}

func TestPlanCmdUsesSavedProfile(t *testing.T) {
	app := newTestApp(t)
	profile := testutil.NewTestProfile(2, 1,
		testutil.WithInterests(domain.AreaData),
		testutil.WithCompleted("미분적분학1"))
	require.NoError(t, app.Profiles.Save(context.Background(), &profile))

	out, err := execute(t, app, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "데이터구조론")
}

func TestProfileShowWithoutProfile(t *testing.T) {
	app := newTestApp(t)
	out, err := execute(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "저장된 프로필이 없습니다")
}

func TestProfileShowAndClear(t *testing.T) {
	app := newTestApp(t)
	profile := testutil.NewTestProfile(3, 1, testutil.WithInterests(domain.AreaData))
	require.NoError(t, app.Profiles.Save(context.Background(), &profile))

	out, err := execute(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "3-1")

	_, err = execute(t, app, "profile", "clear")
	require.NoError(t, err)

	out, err = execute(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "저장된 프로필이 없습니다")
}

func TestPathCmd(t *testing.T) {
	app := newTestApp(t)
	out, err := execute(t, app, "path", "기계학습")
	require.NoError(t, err)
	assert.Contains(t, out, "데이터구조론")
	assert.Contains(t, out, "기계학습")
}

func TestPathCmdUnknownCourse(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "path", "없는과목")
	assert.Error(t, err)
}

func TestRelationCmd(t *testing.T) {
	app := newTestApp(t)
	out, err := execute(t, app, "relation", "데이터구조론", "기계학습")
	require.NoError(t, err)
	assert.Contains(t, out, "선수과목")
}

func TestCatalogListAndShow(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "catalog", "list", "--term", "2-1")
	require.NoError(t, err)
	assert.Contains(t, out, "공업수학1")
	assert.NotContains(t, out, "기계학습")

	out, err = execute(t, app, "catalog", "show", "데이터구조론")
	require.NoError(t, err)
	assert.Contains(t, out, "데이터구조론")
	assert.Contains(t, out, "후속과목")
}
