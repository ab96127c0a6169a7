package interfaces

//go:generate moq -out ../mock/github_mock.go -pkg mock . GitHubClient Notifier

import (
	"context"

	"github.com/m-mizutani/depherd/pkg/domain/model"
)

// GitHubClient defines the GitHub operations the approval flow depends on.
// Both the REST API client and the gh CLI backend implement it.
type GitHubClient interface {
	// ListDependabotPRs lists open pull requests authored by author, with
	// body, mergeable state and reviews populated
	ListDependabotPRs(ctx context.Context, repo model.Repository, author string) ([]*model.PullRequest, error)

	// GetPullRequest fetches a single pull request
	GetPullRequest(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error)

	// ApprovePR submits an approving review
	ApprovePR(ctx context.Context, repo model.Repository, number int) error

	// ListNotifications lists the authenticated user's notification threads
	ListNotifications(ctx context.Context) ([]*model.Notification, error)

	// MarkThreadDone marks a notification thread as done
	MarkThreadDone(ctx context.Context, threadID string) error
}

// Notifier posts a summary of approvals to a chat channel
type Notifier interface {
	NotifyApprovals(ctx context.Context, report *model.ApprovalReport) error
}
