package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermIndex(t *testing.T) {
	assert.Equal(t, 1, Term{Year: 1, Semester: 1}.Index())
	assert.Equal(t, 4, Term{Year: 2, Semester: 2}.Index())
	assert.Equal(t, 7, Term{Year: 4, Semester: 1}.Index())
	assert.Equal(t, 8, Term{Year: 4, Semester: 2}.Index())
}

func TestTermFromIndexRoundTrip(t *testing.T) {
	for idx := FirstTermIndex; idx <= LastTermIndex; idx++ {
		assert.Equal(t, idx, TermFromIndex(idx).Index())
	}
}

func TestParseTerm(t *testing.T) {
	term, err := ParseTerm("3-1")
	require.NoError(t, err)
	assert.Equal(t, Term{Year: 3, Semester: 1}, term)
	assert.Equal(t, "3-1", term.String())

	for _, bad := range []string{"", "3", "0-1", "5-1", "2-3", "a-b"} {
		_, err := ParseTerm(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestAllTerms(t *testing.T) {
	terms := AllTerms()
	require.Len(t, terms, 8)
	assert.Equal(t, Term{Year: 1, Semester: 1}, terms[0])
	assert.Equal(t, Term{Year: 4, Semester: 2}, terms[7])
}

func TestCourseWeight(t *testing.T) {
	c := Course{Name: "데이터구조론", InterestWeights: map[InterestArea]int{AreaData: 3}}
	assert.Equal(t, 3, c.Weight(AreaData))
	assert.Equal(t, 0, c.Weight(AreaFinance))

	unweighted := Course{Name: "말과글"}
	assert.Equal(t, 0, unweighted.Weight(AreaData))
	assert.False(t, unweighted.HasWeights())
}

func TestProfileCompleted(t *testing.T) {
	p := StudentProfile{CompletedCourses: []string{"미분적분학1"}}
	assert.True(t, p.HasCompleted("미분적분학1"))
	assert.False(t, p.HasCompleted("미분적분학2"))
	assert.True(t, p.CompletedSet()["미분적분학1"])

	_, ok := p.PrimaryInterest()
	assert.False(t, ok)
	p.RankedInterestAreas = []InterestArea{AreaData, AreaFinance}
	first, ok := p.PrimaryInterest()
	assert.True(t, ok)
	assert.Equal(t, AreaData, first)
}
