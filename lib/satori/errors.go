package satori

import (
	"errors"
	"fmt"
)

var (
	// recoverable by re-authentication, absorbed by the interactive layer
	ErrNotLoggedIn = errors.New("not logged in")
	// credentials rejected or the login request itself failed
	ErrLoginFailed = errors.New("login failed")
	// transport-level failure, terminal
	ErrConnectionFailed = errors.New("connection failed")
	// page fetched but the expected structure is missing, terminal
	ErrParsingFailed = errors.New("failed to parse page")

	ErrContestNotFound       = errors.New("contest not found")
	ErrProblemNotFound       = errors.New("problem not found")
	ErrSubmissionNotFound    = errors.New("submission not found")
	ErrProblemNotSubmittable = errors.New("problem does not accept submissions")
	ErrInvalidChoice         = errors.New("invalid choice")
)

// NotFoundError decorates ErrContestNotFound / ErrProblemNotFound with the
// query that missed and, when some candidate comes close, a suggestion.
type NotFoundError struct {
	Query      string
	Suggestion string
	sentinel   error
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v: %q (did you mean %q?)", e.sentinel, e.Query, e.Suggestion)
	}
	return fmt.Sprintf("%v: %q", e.sentinel, e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return e.sentinel
}

// AmbiguousNameError reports a query that matched more than one entity.
// Candidates keep the order they were scraped in.
type AmbiguousNameError[T any] struct {
	Query      string
	Candidates []T
}

func (e *AmbiguousNameError[T]) Error() string {
	return fmt.Sprintf("%q matches %d entries", e.Query, len(e.Candidates))
}
