// Package interactive wraps a Satori implementation so every operation
// survives an expired session and an ambiguous contest or problem name.
// All recovery happens here: the wrapped layer never retries anything.
package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/mhorod/satori-cli/lib/satori"
)

type Satori struct {
	inner   satori.Satori
	display satori.Display
	prompt  satori.Prompt
}

func New(inner satori.Satori, display satori.Display, prompt satori.Prompt) Satori {
	return Satori{inner: inner, display: display, prompt: prompt}
}

// retryLoggedIn re-issues op, with its original arguments, for as long as
// it fails with ErrNotLoggedIn and the operator keeps supplying working
// credentials. Every other outcome ends the loop as-is.
func retryLoggedIn[T any](ctx context.Context, s Satori, op func() (T, error)) (T, error) {
	for {
		result, err := op()
		if !errors.Is(err, satori.ErrNotLoggedIn) {
			return result, err
		}
		if err := s.logIn(ctx); err != nil {
			return result, err
		}
	}
}

// logIn prompts for credentials until a login succeeds. A rejected
// password reports the failure and asks again; only an operator decline
// or a non-login error gives up.
func (s Satori) logIn(ctx context.Context) error {
	for {
		login, password, ok := s.prompt.Credentials()
		if !ok {
			return satori.ErrLoginFailed
		}
		_, err := s.inner.Login(ctx, login, password)
		if err == nil {
			return nil
		}
		if !errors.Is(err, satori.ErrLoginFailed) {
			return err
		}
		s.display.Error(err)
	}
}

func (s Satori) chooseContest(err *satori.AmbiguousNameError[satori.Contest]) (satori.Contest, bool) {
	message := fmt.Sprintf("Contest %q is ambiguous. Please choose one:", err.Query)
	options := make([]string, len(err.Candidates))
	for i, c := range err.Candidates {
		options[i] = c.Name
	}
	choice, ok := s.prompt.ChooseOption(message, options)
	if !ok || choice < 0 || choice >= len(err.Candidates) {
		return satori.Contest{}, false
	}
	return err.Candidates[choice], true
}

func (s Satori) chooseProblem(err *satori.AmbiguousNameError[satori.Problem]) (satori.Problem, bool) {
	message := fmt.Sprintf("Problem %q is ambiguous. Please choose one:", err.Query)
	options := make([]string, len(err.Candidates))
	for i, p := range err.Candidates {
		options[i] = fmt.Sprintf("[%s] %s", p.Code, p.Name)
	}
	choice, ok := s.prompt.ChooseOption(message, options)
	if !ok || choice < 0 || choice >= len(err.Candidates) {
		return satori.Problem{}, false
	}
	return err.Candidates[choice], true
}

// substituteContest narrows an ambiguous contest query to the chosen
// candidate's id. The false return means the prompt declined or answered
// out of range.
func (s Satori) substituteContest(err error, query *string) (bool, error) {
	var ambiguous *satori.AmbiguousNameError[satori.Contest]
	if !errors.As(err, &ambiguous) {
		return false, nil
	}
	chosen, ok := s.chooseContest(ambiguous)
	if !ok {
		return false, satori.ErrInvalidChoice
	}
	*query = chosen.ID
	return true, nil
}

// substituteProblem narrows an ambiguous problem query to the chosen
// candidate's code, which is unique within a contest.
func (s Satori) substituteProblem(err error, query *string) (bool, error) {
	var ambiguous *satori.AmbiguousNameError[satori.Problem]
	if !errors.As(err, &ambiguous) {
		return false, nil
	}
	chosen, ok := s.chooseProblem(ambiguous)
	if !ok {
		return false, satori.ErrInvalidChoice
	}
	*query = chosen.Code
	return true, nil
}

func (s Satori) Username(ctx context.Context) (string, error) {
	name, err := retryLoggedIn(ctx, s, func() (string, error) {
		return s.inner.Username(ctx)
	})
	s.display.Username(name, err)
	return name, err
}

func (s Satori) Contests(ctx context.Context, archived, force bool) ([]satori.Contest, error) {
	contests, err := retryLoggedIn(ctx, s, func() ([]satori.Contest, error) {
		return s.inner.Contests(ctx, archived, force)
	})
	s.display.Contests(contests, err)
	return contests, err
}

func (s Satori) Problems(ctx context.Context, contest string, force bool) ([]satori.Problem, error) {
	contestQuery := contest
	for {
		problems, err := retryLoggedIn(ctx, s, func() ([]satori.Problem, error) {
			return s.inner.Problems(ctx, contestQuery, force)
		})
		substituted, substErr := s.substituteContest(err, &contestQuery)
		if substituted {
			continue
		}
		if substErr != nil {
			problems, err = nil, substErr
		}
		s.display.Problems(problems, err)
		return problems, err
	}
}

func (s Satori) Details(ctx context.Context, contest, submission string, force bool) (satori.ResultDetails, error) {
	contestQuery := contest
	for {
		details, err := retryLoggedIn(ctx, s, func() (satori.ResultDetails, error) {
			return s.inner.Details(ctx, contestQuery, submission, force)
		})
		substituted, substErr := s.substituteContest(err, &contestQuery)
		if substituted {
			continue
		}
		if substErr != nil {
			details, err = satori.ResultDetails{}, substErr
		}
		s.display.Details(details, err)
		return details, err
	}
}

func (s Satori) Results(ctx context.Context, contest, problem string, limit int, force bool) ([]satori.ShortResult, error) {
	contestQuery, problemQuery := contest, problem
	for {
		results, err := retryLoggedIn(ctx, s, func() ([]satori.ShortResult, error) {
			return s.inner.Results(ctx, contestQuery, problemQuery, limit, force)
		})
		substituted, substErr := s.substitute(err, &contestQuery, &problemQuery)
		if substituted {
			continue
		}
		if substErr != nil {
			results, err = nil, substErr
		}
		s.display.Results(results, err)
		return results, err
	}
}

func (s Satori) Status(ctx context.Context, contest, problem string, force bool) (string, error) {
	contestQuery, problemQuery := contest, problem
	for {
		status, err := retryLoggedIn(ctx, s, func() (string, error) {
			return s.inner.Status(ctx, contestQuery, problemQuery, force)
		})
		substituted, substErr := s.substitute(err, &contestQuery, &problemQuery)
		if substituted {
			continue
		}
		if substErr != nil {
			status, err = "", substErr
		}
		s.display.Status(status, err)
		return status, err
	}
}

func (s Satori) Submit(ctx context.Context, contest, problem, filePath string) error {
	contestQuery, problemQuery := contest, problem
	for {
		_, err := retryLoggedIn(ctx, s, func() (struct{}, error) {
			return struct{}{}, s.inner.Submit(ctx, contestQuery, problemQuery, filePath)
		})
		substituted, substErr := s.substitute(err, &contestQuery, &problemQuery)
		if substituted {
			continue
		}
		if substErr != nil {
			err = substErr
		}
		s.display.Submit(err)
		return err
	}
}

func (s Satori) PDF(ctx context.Context, contest, problem string, force bool) (string, error) {
	contestQuery, problemQuery := contest, problem
	for {
		path, err := retryLoggedIn(ctx, s, func() (string, error) {
			return s.inner.PDF(ctx, contestQuery, problemQuery, force)
		})
		substituted, substErr := s.substitute(err, &contestQuery, &problemQuery)
		if substituted {
			continue
		}
		if substErr != nil {
			path, err = "", substErr
		}
		s.display.PDF(path, err)
		return path, err
	}
}

// substitute handles both disambiguation axes for operations that resolve
// a contest and a problem.
func (s Satori) substitute(err error, contestQuery, problemQuery *string) (bool, error) {
	if substituted, substErr := s.substituteContest(err, contestQuery); substituted || substErr != nil {
		return substituted, substErr
	}
	return s.substituteProblem(err, problemQuery)
}

func (s Satori) Login(ctx context.Context, login, password string) (string, error) {
	name, err := s.inner.Login(ctx, login, password)
	s.display.Login(name, err)
	return name, err
}

func (s Satori) Logout(ctx context.Context) error {
	err := s.inner.Logout(ctx)
	s.display.Logout(err)
	return err
}
