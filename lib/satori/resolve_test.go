package satori

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testContests = []Contest{
	{ID: "1", Name: "Algo1", Description: "algorithms, first edition"},
	{ID: "2", Name: "Algo2", Description: "algorithms, second edition"},
	{ID: "31", Name: "Crypto", Description: ""},
}

func TestResolveContestUnique(t *testing.T) {
	contest, err := ResolveContest("Algo1", testContests)
	require.NoError(t, err)
	require.Equal(t, "1", contest.ID)

	contest, err = ResolveContest("Cr", testContests)
	require.NoError(t, err)
	require.Equal(t, "31", contest.ID)

	// ids participate in prefix matching too
	contest, err = ResolveContest("31", testContests)
	require.NoError(t, err)
	require.Equal(t, "Crypto", contest.Name)
}

func TestResolveContestNotFound(t *testing.T) {
	_, err := ResolveContest("Geometry", testContests)
	require.ErrorIs(t, err, ErrContestNotFound)
}

func TestResolveContestNoSubstringMatch(t *testing.T) {
	// "lgo" is inside both names, but matching is prefix-only
	_, err := ResolveContest("lgo", testContests)
	require.ErrorIs(t, err, ErrContestNotFound)
}

func TestResolveContestAmbiguous(t *testing.T) {
	_, err := ResolveContest("Algo", testContests)

	var ambiguous *AmbiguousNameError[Contest]
	require.ErrorAs(t, err, &ambiguous)
	require.Equal(t, "Algo", ambiguous.Query)

	want := []Contest{testContests[0], testContests[1]}
	if diff := cmp.Diff(want, ambiguous.Candidates); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveContestDeterministic(t *testing.T) {
	first, errFirst := ResolveContest("Algo", testContests)
	second, errSecond := ResolveContest("Algo", testContests)
	require.Equal(t, first, second)

	var a, b *AmbiguousNameError[Contest]
	require.ErrorAs(t, errFirst, &a)
	require.ErrorAs(t, errSecond, &b)
	require.Equal(t, a.Candidates, b.Candidates)
}

func TestResolveContestSuggestion(t *testing.T) {
	_, err := ResolveContest("algo1", testContests)
	require.ErrorIs(t, err, ErrContestNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "Algo1", notFound.Suggestion)
}

var testProblems = []Problem{
	{ContestID: "1", ID: "101", Code: "A", Name: "Apples"},
	{ContestID: "1", ID: "102", Code: "AB", Name: "Bananas"},
	{ContestID: "1", ID: "", Code: "C", Name: "Cherries"},
}

func TestResolveProblemByCode(t *testing.T) {
	problem, err := ResolveProblem("AB", testProblems)
	require.NoError(t, err)
	require.Equal(t, "Bananas", problem.Name)
}

func TestResolveProblemAmbiguousCode(t *testing.T) {
	_, err := ResolveProblem("A", testProblems)

	var ambiguous *AmbiguousNameError[Problem]
	require.ErrorAs(t, err, &ambiguous)
	require.Len(t, ambiguous.Candidates, 2)
	require.Equal(t, "A", ambiguous.Candidates[0].Code)
	require.Equal(t, "AB", ambiguous.Candidates[1].Code)
}

func TestResolveProblemNotFound(t *testing.T) {
	_, err := ResolveProblem("Z", testProblems)
	require.ErrorIs(t, err, ErrProblemNotFound)
	require.False(t, errors.Is(err, ErrContestNotFound))
}

func TestResolveProblemWithoutSubmitLink(t *testing.T) {
	// an empty id means "not submittable", the problem still resolves
	problem, err := ResolveProblem("Cherries", testProblems)
	require.NoError(t, err)
	require.Equal(t, "C", problem.Code)
	require.Empty(t, problem.ID)
}
