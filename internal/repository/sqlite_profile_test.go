package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehakro/courseplan/internal/domain"
	"github.com/daehakro/courseplan/internal/testutil"
)

func TestStudentProfileRepo_GetNotFoundWhenEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentProfileRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile(2, 1,
		testutil.WithInterests(domain.AreaData, domain.AreaProcess),
		testutil.WithCareerPaths("데이터 분석가", "생산관리 엔지니어"),
		testutil.WithCompleted("미분적분학1", "객체지향프로그래밍"))
	require.NoError(t, repo.Upsert(ctx, &p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, domain.Term{Year: 2, Semester: 1}, got.CurrentTerm)
	assert.Equal(t, []domain.InterestArea{domain.AreaData, domain.AreaProcess}, got.RankedInterestAreas)
	assert.Equal(t, []string{"데이터 분석가", "생산관리 엔지니어"}, got.RankedCareerPaths)
	assert.ElementsMatch(t, []string{"미분적분학1", "객체지향프로그래밍"}, got.CompletedCourses)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestStudentProfileRepo_UpsertReplacesCompletedCourses(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile(2, 1, testutil.WithCompleted("미분적분학1", "확률통계론"))
	require.NoError(t, repo.Upsert(ctx, &p))

	p.CompletedCourses = []string{"미분적분학1"}
	p.CurrentTerm = domain.Term{Year: 2, Semester: 2}
	require.NoError(t, repo.Upsert(ctx, &p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Term{Year: 2, Semester: 2}, got.CurrentTerm)
	assert.Equal(t, []string{"미분적분학1"}, got.CompletedCourses)
}

func TestStudentProfileRepo_EmptyListsRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile(1, 1)
	require.NoError(t, repo.Upsert(ctx, &p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.RankedInterestAreas)
	assert.Empty(t, got.RankedCareerPaths)
	assert.Empty(t, got.CompletedCourses)
}

func TestStudentProfileRepo_Clear(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile(3, 1, testutil.WithCompleted("공업수학1"))
	require.NoError(t, repo.Upsert(ctx, &p))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM completed_courses`).Scan(&count))
	assert.Zero(t, count)
}
