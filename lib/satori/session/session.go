// Package session implements the Satori business operations on top of the
// raw transport, parser and token store. It never retries anything: every
// failure maps to exactly one error and recovery is the caller's business.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/mhorod/satori-cli/lib/satori"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("satori/session")

const (
	rootPath        = "/"
	loginPath       = "/login"
	contestListPath = "/contest/select"
)

// contest and problem listings move slowly, results do not
const (
	contestListLifetime = time.Minute * 15
	problemListLifetime = time.Minute * 15
)

type Options struct {
	Client satori.Client
	Parser satori.Parser
	Tokens satori.TokenStore
	// optional, nil disables caching
	Cache satori.PageCache
}

type Session struct {
	client satori.Client
	parser satori.Parser
	tokens satori.TokenStore
	cache  satori.PageCache
}

func New(opts Options) *Session {
	return &Session{
		client: opts.Client,
		parser: opts.Parser,
		tokens: opts.Tokens,
		cache:  opts.Cache,
	}
}

// fetchAuthenticated loads the stored token, issues a GET and verifies the
// session by looking for a username on the page. A missing username is the
// only signal the platform gives for an expired or absent session.
func (s *Session) fetchAuthenticated(ctx context.Context, path string) (string, error) {
	ctx, span := tracer.Start(ctx, "fetchAuthenticated")
	defer span.End()

	tok, _ := s.tokens.Load()
	page, err := s.client.Get(ctx, tok, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return "", fmt.Errorf("%w: %v", satori.ErrConnectionFailed, err)
	}

	if _, ok := s.parser.FindUsername(page.Body); !ok {
		span.SetStatus(codes.Error, "no username on page")
		return "", satori.ErrNotLoggedIn
	}
	return page.Body, nil
}

// fetchCached serves slow-moving pages from the page cache unless force is
// set; anything fetched fresh goes back into the cache.
func (s *Session) fetchCached(ctx context.Context, path string, lifetime time.Duration, force bool) (string, error) {
	if s.cache != nil && !force {
		if body, ok := s.cache.Get(ctx, path); ok {
			slog.DebugContext(ctx, "page cache hit", "path", path)
			return body, nil
		}
	}
	body, err := s.fetchAuthenticated(ctx, path)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		s.cache.Set(ctx, path, body, lifetime)
	}
	return body, nil
}

func (s *Session) Username(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "session:Username")
	defer span.End()

	body, err := s.fetchAuthenticated(ctx, rootPath)
	if err != nil {
		return "", err
	}
	username, _ := s.parser.FindUsername(body)
	return username, nil
}

// Login posts the credentials, persists the token the server answers with
// and confirms the session took by re-fetching the root page. The platform
// rejects bad credentials without any error page, so a login POST that
// leaves no logged-in user behind counts as failed.
func (s *Session) Login(ctx context.Context, login, password string) (string, error) {
	ctx, span := tracer.Start(ctx, "session:Login")
	defer span.End()

	form := url.Values{}
	form.Set("login", login)
	form.Set("password", password)

	page, err := s.client.Post(ctx, "", loginPath, form)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login request failed")
		return "", fmt.Errorf("%w: %v", satori.ErrLoginFailed, err)
	}
	if page.Token == "" {
		span.SetStatus(codes.Error, "no token issued")
		return "", satori.ErrLoginFailed
	}
	if err := s.tokens.Save(page.Token); err != nil {
		return "", fmt.Errorf("saving token: %w", err)
	}

	confirm, err := s.client.Get(ctx, page.Token, rootPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login confirmation fetch failed")
		return "", fmt.Errorf("%w: %v", satori.ErrConnectionFailed, err)
	}
	username, ok := s.parser.FindUsername(confirm.Body)
	if !ok {
		span.SetStatus(codes.Error, "credentials rejected")
		return "", satori.ErrLoginFailed
	}

	slog.InfoContext(ctx, "logged in", "username", username)
	return username, nil
}

// Logout drops the local token. The platform needs no server-side
// invalidation.
func (s *Session) Logout(ctx context.Context) error {
	_, span := tracer.Start(ctx, "session:Logout")
	defer span.End()

	return s.tokens.Clear()
}

func (s *Session) Contests(ctx context.Context, archived, force bool) ([]satori.Contest, error) {
	ctx, span := tracer.Start(ctx, "session:Contests")
	defer span.End()

	path := contestListPath
	if archived {
		path += "?archived=1"
	}
	body, err := s.fetchCached(ctx, path, contestListLifetime, force)
	if err != nil {
		return nil, err
	}
	contests, ok := s.parser.FindJoinedContests(body)
	if !ok {
		span.SetStatus(codes.Error, "contest table missing")
		return nil, satori.ErrParsingFailed
	}
	return contests, nil
}

func (s *Session) resolveContest(ctx context.Context, query string, force bool) (satori.Contest, error) {
	contests, err := s.Contests(ctx, false, force)
	if err != nil {
		return satori.Contest{}, err
	}
	return satori.ResolveContest(query, contests)
}

func (s *Session) problemsOf(ctx context.Context, contest satori.Contest, force bool) ([]satori.Problem, error) {
	path := fmt.Sprintf("/contest/%s/problems", contest.ID)
	body, err := s.fetchCached(ctx, path, problemListLifetime, force)
	if err != nil {
		return nil, err
	}
	problems, ok := s.parser.FindProblems(body)
	if !ok {
		return nil, satori.ErrParsingFailed
	}
	return problems, nil
}

func (s *Session) resolveProblem(ctx context.Context, contest satori.Contest, query string, force bool) (satori.Problem, error) {
	problems, err := s.problemsOf(ctx, contest, force)
	if err != nil {
		return satori.Problem{}, err
	}
	return satori.ResolveProblem(query, problems)
}

func (s *Session) Problems(ctx context.Context, contest string, force bool) ([]satori.Problem, error) {
	ctx, span := tracer.Start(ctx, "session:Problems")
	defer span.End()

	resolved, err := s.resolveContest(ctx, contest, force)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "resolved contest", "id", resolved.ID, "name", resolved.Name)
	return s.problemsOf(ctx, resolved, force)
}

// Results fetches the submission list of a contest, optionally narrowed to
// one problem and capped at limit entries. Result pages are never cached.
func (s *Session) Results(ctx context.Context, contest, problem string, limit int, force bool) ([]satori.ShortResult, error) {
	ctx, span := tracer.Start(ctx, "session:Results")
	defer span.End()

	resolved, err := s.resolveContest(ctx, contest, force)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if problem != "" {
		p, err := s.resolveProblem(ctx, resolved, problem, force)
		if err != nil {
			return nil, err
		}
		query.Set("filter_problem", p.Code)
	}
	if limit > 0 {
		query.Set("results_limit", strconv.Itoa(limit))
	}

	path := fmt.Sprintf("/contest/%s/results", resolved.ID)
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	body, err := s.fetchAuthenticated(ctx, path)
	if err != nil {
		return nil, err
	}
	results, ok := s.parser.FindResults(body)
	if !ok {
		span.SetStatus(codes.Error, "result table missing")
		return nil, satori.ErrParsingFailed
	}
	return results, nil
}

// Details looks up a single submission. The platform renders an unknown
// submission id as a page without the details block, which is reported as
// ErrSubmissionNotFound rather than a parsing failure.
func (s *Session) Details(ctx context.Context, contest, submission string, force bool) (satori.ResultDetails, error) {
	ctx, span := tracer.Start(ctx, "session:Details")
	defer span.End()

	resolved, err := s.resolveContest(ctx, contest, force)
	if err != nil {
		return satori.ResultDetails{}, err
	}

	path := fmt.Sprintf("/contest/%s/results/%s", resolved.ID, submission)
	body, err := s.fetchAuthenticated(ctx, path)
	if err != nil {
		return satori.ResultDetails{}, err
	}
	details, ok := s.parser.FindDetails(body)
	if !ok {
		span.SetStatus(codes.Error, "submission not on page")
		return satori.ResultDetails{}, satori.ErrSubmissionNotFound
	}
	return details, nil
}

// Status reports the status token of the most recent submission for one
// problem.
func (s *Session) Status(ctx context.Context, contest, problem string, force bool) (string, error) {
	ctx, span := tracer.Start(ctx, "session:Status")
	defer span.End()

	results, err := s.Results(ctx, contest, problem, 1, force)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", satori.ErrSubmissionNotFound
	}
	return results[0].Status, nil
}

func (s *Session) Submit(ctx context.Context, contest, problem, filePath string) error {
	ctx, span := tracer.Start(ctx, "session:Submit")
	defer span.End()

	resolvedContest, err := s.resolveContest(ctx, contest, false)
	if err != nil {
		return err
	}
	resolvedProblem, err := s.resolveProblem(ctx, resolvedContest, problem, false)
	if err != nil {
		return err
	}
	if resolvedProblem.ID == "" || resolvedProblem.SubmitURL == "" {
		return satori.ErrProblemNotSubmittable
	}

	tok, _ := s.tokens.Load()
	fields := url.Values{}
	fields.Set("problem", resolvedProblem.ID)

	page, err := s.client.SubmitFile(ctx, tok, resolvedProblem.SubmitURL, fields, "codefile", filePath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upload failed")
		return fmt.Errorf("%w: %v", satori.ErrConnectionFailed, err)
	}
	if _, ok := s.parser.FindUsername(page.Body); !ok {
		return satori.ErrNotLoggedIn
	}

	slog.InfoContext(ctx, "submitted solution",
		"contest", resolvedContest.ID,
		"problem", resolvedProblem.Code,
		"file", filePath,
	)
	return nil
}

// PDF downloads the problem statement into the working directory and
// returns the written file name.
func (s *Session) PDF(ctx context.Context, contest, problem string, force bool) (string, error) {
	ctx, span := tracer.Start(ctx, "session:PDF")
	defer span.End()

	resolvedContest, err := s.resolveContest(ctx, contest, force)
	if err != nil {
		return "", err
	}
	resolvedProblem, err := s.resolveProblem(ctx, resolvedContest, problem, force)
	if err != nil {
		return "", err
	}
	if resolvedProblem.PDFUrl == "" {
		return "", satori.ErrParsingFailed
	}

	tok, _ := s.tokens.Load()
	page, err := s.client.Get(ctx, tok, resolvedProblem.PDFUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "statement download failed")
		return "", fmt.Errorf("%w: %v", satori.ErrConnectionFailed, err)
	}

	name := resolvedProblem.Code + ".pdf"
	if err := os.WriteFile(name, []byte(page.Body), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}
