package ghcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const prListLimit = "100"

// Runner executes gh with args and returns its stdout
type Runner func(ctx context.Context, args ...string) ([]byte, error)

// Client implements interfaces.GitHubClient on top of the gh CLI, reusing
// whatever authentication gh already has.
type Client struct {
	run Runner
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithRunner replaces the gh executable
func WithRunner(r Runner) Option {
	return func(c *Client) {
		c.run = r
	}
}

func New(opts ...Option) *Client {
	c := &Client{run: execGH}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func execGH(ctx context.Context, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, goerr.Wrap(err, "gh command failed",
			goerr.V("args", args),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}
	return out, nil
}

// ghPR mirrors the fields requested with --json
type ghPR struct {
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	State       string     `json:"state"` // OPEN, CLOSED, MERGED
	URL         string     `json:"url"`
	HeadRefName string     `json:"headRefName"`
	Mergeable   string     `json:"mergeable"` // MERGEABLE, CONFLICTING, UNKNOWN
	Author      ghUser     `json:"author"`
	Reviews     []ghReview `json:"reviews"`
}

type ghUser struct {
	Login string `json:"login"`
}

type ghReview struct {
	State  string `json:"state"`
	Author ghUser `json:"author"`
}

const prFields = "number,title,body,state,url,headRefName,mergeable,author,reviews"

func (p *ghPR) toModel() *model.PullRequest {
	pr := &model.PullRequest{
		Number:    p.Number,
		Title:     p.Title,
		Body:      p.Body,
		Author:    p.Author.Login,
		State:     strings.ToLower(p.State),
		HeadRef:   p.HeadRefName,
		URL:       p.URL,
		Mergeable: model.ParseMergeableState(p.Mergeable),
	}
	for _, r := range p.Reviews {
		pr.Reviews = append(pr.Reviews, model.Review{
			State:  model.ReviewState(r.State),
			Author: r.Author.Login,
		})
	}
	return pr
}

// searchAuthor converts a bot login to gh's search qualifier, e.g.
// dependabot[bot] -> app/dependabot
func searchAuthor(author string) string {
	if name, ok := strings.CutSuffix(author, "[bot]"); ok {
		return "app/" + name
	}
	return author
}

func (c *Client) call(ctx context.Context, out any, args ...string) error {
	ctxlog.From(ctx).Debug("Running gh", "args", args)

	raw, err := c.run(ctx, args...)
	if err != nil {
		return goerr.Wrap(errors.Join(types.ErrTransport, err), "failed to run gh", goerr.V("args", args))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return goerr.Wrap(errors.Join(types.ErrTransport, err), "failed to decode gh output", goerr.V("args", args))
	}
	return nil
}

func (c *Client) ListDependabotPRs(ctx context.Context, repo model.Repository, author string) ([]*model.PullRequest, error) {
	var prs []ghPR
	if err := c.call(ctx, &prs,
		"pr", "list",
		"--repo", repo.FullName(),
		"--search", "author:"+searchAuthor(author),
		"--limit", prListLimit,
		"--json", prFields,
	); err != nil {
		return nil, err
	}

	result := make([]*model.PullRequest, 0, len(prs))
	for i := range prs {
		result = append(result, prs[i].toModel())
	}
	return result, nil
}

func (c *Client) GetPullRequest(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error) {
	var pr ghPR
	if err := c.call(ctx, &pr,
		"pr", "view", strconv.Itoa(number),
		"--repo", repo.FullName(),
		"--json", prFields,
	); err != nil {
		return nil, err
	}
	return pr.toModel(), nil
}

func (c *Client) ApprovePR(ctx context.Context, repo model.Repository, number int) error {
	return c.call(ctx, nil,
		"pr", "review", strconv.Itoa(number),
		"--repo", repo.FullName(),
		"--approve",
	)
}

// ghNotification mirrors the REST notification thread returned by gh api
type ghNotification struct {
	ID      string `json:"id"`
	Subject struct {
		Title string `json:"title"`
		URL   string `json:"url"`
		Type  string `json:"type"`
	} `json:"subject"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
}

func (c *Client) ListNotifications(ctx context.Context) ([]*model.Notification, error) {
	var pages [][]ghNotification
	if err := c.call(ctx, &pages, "api", "--paginate", "--slurp", "/notifications"); err != nil {
		return nil, err
	}

	var result []*model.Notification
	for _, page := range pages {
		for _, n := range page {
			result = append(result, &model.Notification{
				ID:           n.ID,
				SubjectType:  n.Subject.Type,
				SubjectURL:   n.Subject.URL,
				SubjectTitle: n.Subject.Title,
				Repository:   n.Repository.FullName,
			})
		}
	}
	return result, nil
}

func (c *Client) MarkThreadDone(ctx context.Context, threadID string) error {
	if _, err := strconv.ParseInt(threadID, 10, 64); err != nil {
		return goerr.Wrap(types.ErrInvalidArgument, "thread id must be numeric", goerr.V("thread_id", threadID))
	}
	return c.call(ctx, nil, "api", "-X", "DELETE", "/notifications/threads/"+threadID)
}
