package satori

import (
	"context"
	"net/url"
	"time"
)

// Token is the opaque session credential the platform hands out at login.
// No structure is assumed beyond "non-empty means a session may exist".
type Token string

type Contest struct {
	ID          string
	Name        string
	Description string
}

// Problem with an empty ID has no submit link (deadline passed or the
// contest is archived); that is a valid state, not a parsing failure.
type Problem struct {
	ContestID string
	ID        string
	Code      string
	Name      string
	PDFUrl    string
	Deadline  string
	SubmitURL string
}

type ShortResult struct {
	SubmissionID string
	ProblemCode  string
	Time         string
	Status       string
}

type TestCaseResult struct {
	TestCase string
	Status   string
	Time     string
}

type ResultDetails struct {
	SubmissionID string
	ProblemCode  string
	Time         string
	Status       string
	TestResults  []TestCaseResult
}

// Satori is the business surface of the client. Contest and problem
// arguments are free-text queries resolved against the live collections;
// see ResolveContest and ResolveProblem for the matching rules.
type Satori interface {
	Username(ctx context.Context) (string, error)
	Contests(ctx context.Context, archived, force bool) ([]Contest, error)
	Problems(ctx context.Context, contest string, force bool) ([]Problem, error)
	Details(ctx context.Context, contest, submission string, force bool) (ResultDetails, error)
	Results(ctx context.Context, contest, problem string, limit int, force bool) ([]ShortResult, error)
	Status(ctx context.Context, contest, problem string, force bool) (string, error)
	Submit(ctx context.Context, contest, problem, filePath string) error
	PDF(ctx context.Context, contest, problem string, force bool) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
	Logout(ctx context.Context) error
}

// Page is the outcome of one HTTP exchange: the rendered body plus the
// session token the server left behind (unchanged when the server set none).
type Page struct {
	Body  string
	Token Token
}

// Client is the raw transport. The token travels explicitly through every
// call; the transport itself holds no session state.
type Client interface {
	Get(ctx context.Context, tok Token, path string) (Page, error)
	Post(ctx context.Context, tok Token, path string, form url.Values) (Page, error)
	SubmitFile(ctx context.Context, tok Token, path string, fields url.Values, fileField, filePath string) (Page, error)
}

// Parser turns a page body into typed values. The false return means the
// expected structure is absent from the page, never that the page itself
// failed to load.
type Parser interface {
	FindUsername(body string) (string, bool)
	FindJoinedContests(body string) ([]Contest, bool)
	FindProblems(body string) ([]Problem, bool)
	FindResults(body string) ([]ShortResult, bool)
	FindDetails(body string) (ResultDetails, bool)
}

// TokenStore persists the session token across runs.
type TokenStore interface {
	Load() (Token, bool)
	Save(tok Token) error
	Clear() error
}

// Prompt obtains input from the operator. A false return means the
// operator declined, which must abort the enclosing loop cleanly.
type Prompt interface {
	Credentials() (login, password string, ok bool)
	ChooseOption(message string, options []string) (choice int, ok bool)
}

// PageCache keeps fetched pages around between runs. Implementations are
// free to drop anything at any time; a miss only costs a refetch.
type PageCache interface {
	Get(ctx context.Context, path string) (string, bool)
	Set(ctx context.Context, path, body string, lifetime time.Duration)
}

// Display renders the outcome of each business operation. Every method
// receives the error alongside the value so failures surface exactly once.
type Display interface {
	Username(name string, err error)
	Contests(contests []Contest, err error)
	Problems(problems []Problem, err error)
	Results(results []ShortResult, err error)
	Details(details ResultDetails, err error)
	Status(status string, err error)
	Submit(err error)
	PDF(path string, err error)
	Login(name string, err error)
	Logout(err error)
	Error(err error)
}
