package web

import (
	"net/url"
	"strings"

	"github.com/mhorod/satori-cli/lib/htmlutil"
	"github.com/mhorod/satori-cli/lib/satori"

	"github.com/PuerkitoBio/goquery"
)

// Parser extracts typed entities from the platform's server-rendered
// pages. Every method reports false when the structure it expects is not
// on the page; callers decide what that absence means.
type Parser struct{}

func document(body string) (*goquery.Document, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, false
	}
	return doc, true
}

// pathSegment picks one element of an absolute path, so for
// "/contest/123/problems" index 2 yields "123".
func pathSegment(href string, index int) string {
	parts := strings.Split(href, "/")
	if index < 0 || index >= len(parts) {
		return ""
	}
	return parts[index]
}

func queryParam(href, key string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return parsed.Query().Get(key)
}

// FindUsername reads the logged-in user from the page header. The header
// shows "Register" in that spot for anonymous visitors.
func (Parser) FindUsername(body string) (string, bool) {
	doc, ok := document(body)
	if !ok {
		return "", false
	}
	entry := doc.Find("div#header ul.headerRightUl li").First()
	if entry.Length() == 0 {
		return "", false
	}
	name := htmlutil.CellText(entry)
	if name == "" || name == "Register" {
		return "", false
	}
	return name, true
}

func (Parser) FindJoinedContests(body string) ([]satori.Contest, bool) {
	doc, ok := document(body)
	if !ok {
		return nil, false
	}
	table := doc.Find("table.results").First()
	if table.Length() == 0 {
		return nil, false
	}

	contests := []satori.Contest{}
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		id := pathSegment(htmlutil.Href(cells.Eq(0)), 2)
		if id == "" {
			return
		}
		contests = append(contests, satori.Contest{
			ID:          id,
			Name:        htmlutil.CellText(cells.Eq(0)),
			Description: htmlutil.CellText(cells.Eq(1)),
		})
	})
	return contests, true
}

func (Parser) FindProblems(body string) ([]satori.Problem, bool) {
	doc, ok := document(body)
	if !ok {
		return nil, false
	}
	table := doc.Find("table.results").First()
	if table.Length() == 0 {
		return nil, false
	}

	problems := []satori.Problem{}
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}
		problem := satori.Problem{
			Code:     htmlutil.CellText(cells.Eq(0)),
			Name:     htmlutil.CellText(cells.Eq(1)),
			PDFUrl:   htmlutil.Href(cells.Eq(2)),
			Deadline: htmlutil.CellText(cells.Eq(3)),
		}
		// the submit link is absent once the deadline passed or the
		// contest was archived
		if cells.Length() > 4 {
			if submitURL := htmlutil.Href(cells.Eq(4)); submitURL != "" {
				problem.SubmitURL = submitURL
				problem.ContestID = pathSegment(submitURL, 2)
				problem.ID = queryParam(submitURL, "select")
			}
		}
		problems = append(problems, problem)
	})
	return problems, true
}

func (Parser) FindResults(body string) ([]satori.ShortResult, bool) {
	doc, ok := document(body)
	if !ok {
		return nil, false
	}
	table := doc.Find("table.results").First()
	if table.Length() == 0 {
		return nil, false
	}

	results := []satori.ShortResult{}
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}
		results = append(results, satori.ShortResult{
			SubmissionID: htmlutil.CellText(cells.Eq(0)),
			ProblemCode:  htmlutil.CellText(cells.Eq(1)),
			Time:         htmlutil.CellText(cells.Eq(2)),
			Status:       htmlutil.CellText(cells.Eq(3)),
		})
	})
	return results, true
}

// FindDetails expects the submission page: a one-row summary table
// followed by the per-test table.
func (Parser) FindDetails(body string) (satori.ResultDetails, bool) {
	doc, ok := document(body)
	if !ok {
		return satori.ResultDetails{}, false
	}
	tables := doc.Find("table.results")
	if tables.Length() == 0 {
		return satori.ResultDetails{}, false
	}

	summary := tables.Eq(0).Find("tr").Eq(1).Find("td")
	if summary.Length() < 4 {
		return satori.ResultDetails{}, false
	}
	details := satori.ResultDetails{
		SubmissionID: htmlutil.CellText(summary.Eq(0)),
		ProblemCode:  htmlutil.CellText(summary.Eq(1)),
		Time:         htmlutil.CellText(summary.Eq(2)),
		Status:       htmlutil.CellText(summary.Eq(3)),
	}

	if tables.Length() > 1 {
		tables.Eq(1).Find("tr").Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return
			}
			cells := row.Find("td")
			if cells.Length() < 3 {
				return
			}
			details.TestResults = append(details.TestResults, satori.TestCaseResult{
				TestCase: htmlutil.CellText(cells.Eq(0)),
				Status:   htmlutil.CellText(cells.Eq(1)),
				Time:     htmlutil.CellText(cells.Eq(2)),
			})
		})
	}
	return details, true
}
