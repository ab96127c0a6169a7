package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const perPage = 100

// Client implements interfaces.GitHubClient with the REST API
type Client struct {
	githubClient *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

// Option configures a Client
type Option func(*Client) error

// WithBaseURL points the client at another API endpoint, e.g. GitHub Enterprise or a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("url", baseURL))
		}
		if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
			u.Path += "/"
		}
		c.githubClient.BaseURL = u
		return nil
	}
}

// NewClient creates a client authenticated with a personal access token
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "GitHub token is required")
	}
	return newClient(github.NewClient(nil).WithAuthToken(token), opts)
}

// NewAppClient creates a client authenticated as a GitHub App installation
func NewAppClient(appID, installationID int64, privateKey []byte, opts ...Option) (*Client, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("app_id", appID),
			goerr.V("installation_id", installationID),
		)
	}

	return newClient(github.NewClient(&http.Client{Transport: itr}), opts)
}

func newClient(gh *github.Client, opts []Option) (*Client, error) {
	c := &Client{githubClient: gh}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ListDependabotPRs lists open pull requests of author. The list endpoint
// never reports mergeability, so each matching pull request is fetched again
// together with its reviews.
func (c *Client) ListDependabotPRs(ctx context.Context, repo model.Repository, author string) ([]*model.PullRequest, error) {
	logger := ctxlog.From(ctx)
	policy := model.Policy{Author: author}

	var numbers []int
	opt := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	for {
		prs, resp, err := c.githubClient.PullRequests.List(ctx, repo.Owner, repo.Name, opt)
		if err != nil {
			return nil, goerr.Wrap(errors.Join(types.ErrTransport, err), "failed to list pull requests",
				goerr.V("repo", repo.FullName()),
			)
		}
		for _, pr := range prs {
			if policy.IsAuthor(pr.GetUser().GetLogin()) {
				numbers = append(numbers, pr.GetNumber())
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	logger.Debug("Listed pull requests", "repo", repo.FullName(), "author", author, "count", len(numbers))

	result := make([]*model.PullRequest, 0, len(numbers))
	for _, number := range numbers {
		pr, err := c.GetPullRequest(ctx, repo, number)
		if err != nil {
			return nil, err
		}
		result = append(result, pr)
	}
	return result, nil
}

// GetPullRequest fetches a pull request with its reviews
func (c *Client) GetPullRequest(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(types.ErrTransport, err), "failed to get pull request",
			goerr.V("repo", repo.FullName()),
			goerr.V("number", number),
		)
	}

	reviews, err := c.listReviews(ctx, repo, number)
	if err != nil {
		return nil, err
	}

	return &model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Body:      pr.GetBody(),
		Author:    pr.GetUser().GetLogin(),
		State:     pr.GetState(),
		HeadRef:   pr.GetHead().GetRef(),
		URL:       pr.GetHTMLURL(),
		Mergeable: model.MergeableFromREST(pr.Mergeable),
		Reviews:   reviews,
	}, nil
}

func (c *Client) listReviews(ctx context.Context, repo model.Repository, number int) ([]model.Review, error) {
	var reviews []model.Review
	opt := &github.ListOptions{PerPage: perPage}
	for {
		page, resp, err := c.githubClient.PullRequests.ListReviews(ctx, repo.Owner, repo.Name, number, opt)
		if err != nil {
			return nil, goerr.Wrap(errors.Join(types.ErrTransport, err), "failed to list reviews",
				goerr.V("repo", repo.FullName()),
				goerr.V("number", number),
			)
		}
		for _, r := range page {
			reviews = append(reviews, model.Review{
				State:  model.ReviewState(r.GetState()),
				Author: r.GetUser().GetLogin(),
			})
		}
		if resp.NextPage == 0 {
			return reviews, nil
		}
		opt.Page = resp.NextPage
	}
}

// ApprovePR submits an APPROVE review
func (c *Client) ApprovePR(ctx context.Context, repo model.Repository, number int) error {
	review := &github.PullRequestReviewRequest{
		Event: github.Ptr("APPROVE"),
	}
	if _, _, err := c.githubClient.PullRequests.CreateReview(ctx, repo.Owner, repo.Name, number, review); err != nil {
		return goerr.Wrap(errors.Join(types.ErrTransport, err), "failed to approve pull request",
			goerr.V("repo", repo.FullName()),
			goerr.V("number", number),
		)
	}
	return nil
}

// ListNotifications lists unread notification threads of the authenticated user
func (c *Client) ListNotifications(ctx context.Context) ([]*model.Notification, error) {
	var result []*model.Notification
	opt := &github.NotificationListOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	for {
		page, resp, err := c.githubClient.Activity.ListNotifications(ctx, opt)
		if err != nil {
			return nil, goerr.Wrap(errors.Join(types.ErrTransport, err), "failed to list notifications")
		}
		for _, n := range page {
			result = append(result, &model.Notification{
				ID:           n.GetID(),
				SubjectType:  n.GetSubject().GetType(),
				SubjectURL:   n.GetSubject().GetURL(),
				SubjectTitle: n.GetSubject().GetTitle(),
				Repository:   n.GetRepository().GetFullName(),
			})
		}
		if resp.NextPage == 0 {
			return result, nil
		}
		opt.Page = resp.NextPage
	}
}

// MarkThreadDone marks a notification thread as done, which removes it from the inbox
func (c *Client) MarkThreadDone(ctx context.Context, threadID string) error {
	if _, err := strconv.ParseInt(threadID, 10, 64); err != nil {
		return goerr.Wrap(types.ErrInvalidArgument, "thread id must be numeric", goerr.V("thread_id", threadID))
	}

	req, err := c.githubClient.NewRequest(http.MethodDelete, "notifications/threads/"+threadID, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("thread_id", threadID))
	}
	if _, err := c.githubClient.Do(ctx, req, nil); err != nil {
		return goerr.Wrap(errors.Join(types.ErrTransport, err), "failed to mark notification as done",
			goerr.V("thread_id", threadID),
		)
	}
	return nil
}
