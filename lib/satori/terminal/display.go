package terminal

import (
	"fmt"
	"os"

	"github.com/mhorod/satori-cli/lib/satori"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Display renders operation results to stdout and errors to stderr.
type Display struct{}

func NewDisplay() Display {
	return Display{}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	return t
}

func (Display) Username(name string, err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}
	fmt.Println(name)
}

func (Display) Contests(contests []satori.Contest, err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"ID", "Name", "Description"})
	for _, c := range contests {
		t.AppendRow(table.Row{c.ID, c.Name, c.Description})
	}
	t.Render()
}

func (Display) Problems(problems []satori.Problem, err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"Code", "Name", "Deadline", "Submittable"})
	for _, p := range problems {
		submittable := "no"
		if p.ID != "" {
			submittable = "yes"
		}
		t.AppendRow(table.Row{p.Code, p.Name, p.Deadline, submittable})
	}
	t.Render()
}

func (Display) Results(results []satori.ShortResult, err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"Submission", "Problem", "Time", "Status"})
	for _, r := range results {
		t.AppendRow(table.Row{r.SubmissionID, r.ProblemCode, r.Time, r.Status})
	}
	t.Render()
}

func (Display) Details(details satori.ResultDetails, err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}

	summary := newTable()
	summary.AppendHeader(table.Row{"Submission", "Problem", "Time", "Status"})
	summary.AppendRow(table.Row{
		details.SubmissionID, details.ProblemCode, details.Time, details.Status,
	})
	summary.Render()

	if len(details.TestResults) == 0 {
		return
	}
	tests := newTable()
	tests.AppendHeader(table.Row{"Test", "Status", "Time"})
	for _, tc := range details.TestResults {
		tests.AppendRow(table.Row{tc.TestCase, tc.Status, tc.Time})
	}
	tests.Render()
}

func (Display) Status(status string, err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}
	fmt.Println(status)
}

func (Display) Submit(err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}
	fmt.Println("submitted")
}

func (Display) PDF(path string, err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}
	fmt.Println("saved", path)
}

func (Display) Login(name string, err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}
	fmt.Println("logged in as", name)
}

func (Display) Logout(err error) {
	if err != nil {
		Display{}.Error(err)
		return
	}
	fmt.Println("logged out")
}

func (Display) Error(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
}
