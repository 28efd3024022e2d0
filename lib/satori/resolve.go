package satori

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// queries match case-sensitively on prefixes, the most restrictive of the
// behaviors the platform community has used
func matchesContest(c Contest, query string) bool {
	return strings.HasPrefix(c.ID, query) || strings.HasPrefix(c.Name, query)
}

func matchesProblem(p Problem, query string) bool {
	return strings.HasPrefix(p.ID, query) ||
		strings.HasPrefix(p.Code, query) ||
		strings.HasPrefix(p.Name, query)
}

// ResolveContest maps a free-text query to exactly one of the given
// contests. Zero matches yield ErrContestNotFound, more than one an
// AmbiguousNameError carrying the matched subset in scrape order.
func ResolveContest(query string, contests []Contest) (Contest, error) {
	var matched []Contest
	for _, c := range contests {
		if matchesContest(c, query) {
			matched = append(matched, c)
		}
	}

	switch len(matched) {
	case 0:
		names := make([]string, 0, len(contests))
		for _, c := range contests {
			names = append(names, c.Name)
		}
		return Contest{}, &NotFoundError{
			Query:      query,
			Suggestion: closestName(query, names),
			sentinel:   ErrContestNotFound,
		}
	case 1:
		return matched[0], nil
	default:
		return Contest{}, &AmbiguousNameError[Contest]{Query: query, Candidates: matched}
	}
}

// ResolveProblem is ResolveContest scoped to the problems of one contest;
// the query additionally matches on the problem code.
func ResolveProblem(query string, problems []Problem) (Problem, error) {
	var matched []Problem
	for _, p := range problems {
		if matchesProblem(p, query) {
			matched = append(matched, p)
		}
	}

	switch len(matched) {
	case 0:
		names := make([]string, 0, len(problems)*2)
		for _, p := range problems {
			names = append(names, p.Code, p.Name)
		}
		return Problem{}, &NotFoundError{
			Query:      query,
			Suggestion: closestName(query, names),
			sentinel:   ErrProblemNotFound,
		}
	case 1:
		return matched[0], nil
	default:
		return Problem{}, &AmbiguousNameError[Problem]{Query: query, Candidates: matched}
	}
}

// anything below this similarity is noise, not a typo
const suggestionThreshold = 0.8

func closestName(query string, names []string) string {
	best := ""
	bestSimilarity := 0.0
	for _, name := range names {
		similarity := matchr.JaroWinkler(query, name, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = name
		}
	}
	if bestSimilarity < suggestionThreshold {
		return ""
	}
	return best
}
