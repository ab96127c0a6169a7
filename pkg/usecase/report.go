package usecase

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/depherd/pkg/domain/model"
)

// printer writes the human-readable progress lines of a run. Structured logs
// go to the context logger; these lines are the user-facing report.
type printer struct {
	w       io.Writer
	ok      *color.Color
	skip    *color.Color
	fail    *color.Color
	heading *color.Color
}

func newPrinter(w io.Writer) *printer {
	if w == nil {
		w = io.Discard
	}
	return &printer{
		w:       w,
		ok:      color.New(color.FgGreen),
		skip:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		heading: color.New(color.Bold),
	}
}

func (p *printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) OK(format string, args ...any) {
	p.ok.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Fail(format string, args ...any) {
	p.fail.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Heading(format string, args ...any) {
	p.heading.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Verdict(v *model.Verdict) {
	switch {
	case v.Eligible:
		return
	case isParseError(v):
		p.fail.Fprintln(p.w, v.Message())
	default:
		p.skip.Fprintln(p.w, v.Message())
	}
}

func (p *printer) EligibleList(prs []*model.PullRequest) {
	p.Heading("\nThe following PRs are eligible for approval:")
	for _, pr := range prs {
		p.Printf("PR #%d: %s", pr.Number, pr.Title)
	}
}
