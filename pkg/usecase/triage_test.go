package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/depherd/pkg/domain/mock"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestTriage_Run(t *testing.T) {
	ctx := context.Background()

	notifications := []*model.Notification{
		{ID: "1", SubjectType: "PullRequest", Repository: "octo/zeta", SubjectURL: "https://api.github.com/repos/octo/zeta/pulls/10"},
		{ID: "2", SubjectType: "PullRequest", Repository: "octo/alpha", SubjectURL: "https://api.github.com/repos/octo/alpha/pulls/20"},
		{ID: "3", SubjectType: "PullRequest", Repository: "octo/alpha", SubjectURL: "https://api.github.com/repos/octo/alpha/pulls/21"},
		{ID: "4", SubjectType: "PullRequest", Repository: "octo/beta", SubjectURL: "https://api.github.com/repos/octo/beta/pulls/30"},
		{ID: "5", SubjectType: "Issue", Repository: "octo/beta", SubjectURL: "https://api.github.com/repos/octo/beta/issues/31"},
		{ID: "6", SubjectType: "PullRequest", Repository: "octo/gamma", SubjectURL: "https://api.github.com/repos/octo/gamma/pulls/40"},
		{ID: "7", SubjectType: "PullRequest", Repository: "octo/gamma"},
	}

	pullRequests := map[int]*model.PullRequest{
		10: {Number: 10, State: "open", Author: "dependabot[bot]"},
		20: {Number: 20, State: "open", Author: "dependabot[bot]"},
		21: {Number: 21, State: "closed", Author: "someone"},
		30: {Number: 30, State: "open", Author: "someone"},
	}

	newClient := func() *mock.GitHubClientMock {
		return &mock.GitHubClientMock{
			ListNotificationsFunc: func(ctx context.Context) ([]*model.Notification, error) {
				return notifications, nil
			},
			GetPullRequestFunc: func(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error) {
				pr, ok := pullRequests[number]
				if !ok {
					return nil, errors.New("not found")
				}
				return pr, nil
			},
			MarkThreadDoneFunc: func(ctx context.Context, threadID string) error {
				return nil
			},
		}
	}

	t.Run("closes threads of closed PRs and approves per repo in order", func(t *testing.T) {
		client := newClient()
		approver := &mock.RepositoryApproverMock{
			RunFunc: func(ctx context.Context, repo model.Repository) (*model.ApprovalReport, error) {
				if repo.Name == "alpha" {
					return nil, errors.New("boom")
				}
				return &model.ApprovalReport{Repository: repo}, nil
			},
		}
		var out bytes.Buffer

		report, err := usecase.NewTriage(client, approver, model.DefaultPolicy(), &out).Run(ctx)
		gt.NoError(t, err)

		gt.Number(t, report.Notifications).Equal(7)
		gt.Value(t, report.ClosedDone).Equal([]string{"3"})
		gt.Number(t, len(client.GetPullRequestCalls())).Equal(5)

		calls := approver.RunCalls()
		gt.Number(t, len(calls)).Equal(2)
		gt.Value(t, calls[0].Repo.FullName()).Equal("octo/alpha")
		gt.Value(t, calls[1].Repo.FullName()).Equal("octo/zeta")
		gt.Number(t, len(report.Approvals)).Equal(1)

		gt.String(t, out.String()).Contains("PR #21 in octo/alpha is closed/merged. Marking notification as done.")
		gt.String(t, out.String()).Contains("Could not fetch details for PR related to notification 6")
		gt.String(t, out.String()).Contains("--- Running approve for octo/alpha ---")
		gt.String(t, out.String()).Contains("Approval for octo/alpha failed")
		gt.String(t, out.String()).Contains("--- Finished approve for octo/zeta ---")
		gt.String(t, out.String()).Contains("Found 7 notifications.\n")
		gt.String(t, out.String()).NotContains("%!")
	})

	t.Run("failing to mark done is reported", func(t *testing.T) {
		client := newClient()
		client.MarkThreadDoneFunc = func(ctx context.Context, threadID string) error {
			return errors.New("forbidden")
		}
		approver := &mock.RepositoryApproverMock{
			RunFunc: func(ctx context.Context, repo model.Repository) (*model.ApprovalReport, error) {
				return &model.ApprovalReport{Repository: repo}, nil
			},
		}

		report, err := usecase.NewTriage(client, approver, model.DefaultPolicy(), nil).Run(ctx)
		gt.NoError(t, err)
		gt.Value(t, report.ClosedFailed).Equal([]string{"3"})
		gt.Number(t, len(report.ClosedDone)).Equal(0)
	})

	t.Run("empty inbox", func(t *testing.T) {
		client := &mock.GitHubClientMock{
			ListNotificationsFunc: func(ctx context.Context) ([]*model.Notification, error) {
				return nil, nil
			},
		}
		approver := &mock.RepositoryApproverMock{}
		var out bytes.Buffer

		report, err := usecase.NewTriage(client, approver, model.DefaultPolicy(), &out).Run(ctx)
		gt.NoError(t, err)
		gt.Number(t, report.Notifications).Equal(0)
		gt.Number(t, len(approver.RunCalls())).Equal(0)
		gt.String(t, out.String()).Contains("No notifications to process.")
	})

	t.Run("no dependabot repos", func(t *testing.T) {
		client := newClient()
		approver := &mock.RepositoryApproverMock{}
		var out bytes.Buffer

		_, err := usecase.NewTriage(client, approver, model.Policy{Author: "renovate[bot]"}, &out).Run(ctx)
		gt.NoError(t, err)
		gt.Number(t, len(approver.RunCalls())).Equal(0)
		gt.String(t, out.String()).Contains("No open Dependabot PRs found in notifications that require action.")
	})

	t.Run("list failure is an error", func(t *testing.T) {
		client := &mock.GitHubClientMock{
			ListNotificationsFunc: func(ctx context.Context) ([]*model.Notification, error) {
				return nil, errors.New("unauthorized")
			},
		}

		_, err := usecase.NewTriage(client, &mock.RepositoryApproverMock{}, model.DefaultPolicy(), nil).Run(ctx)
		gt.Error(t, err)
	})
}
