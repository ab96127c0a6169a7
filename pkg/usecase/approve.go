package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

const approvalPrompt = "\nWould you like to approve these PRs? (y/N): "

// Approver runs the approval flow for one repository: list, filter, confirm,
// approve and reconcile notifications.
type Approver struct {
	githubClient interfaces.GitHubClient
	confirmer    interfaces.Confirmer
	notifier     interfaces.Notifier
	policy       model.Policy
	out          *printer
}

// ApproverOption configures an Approver
type ApproverOption func(*Approver)

// WithPolicy sets the author and deny lists
func WithPolicy(policy model.Policy) ApproverOption {
	return func(a *Approver) {
		a.policy = policy
	}
}

// WithOutput sets where the human-readable report is written
func WithOutput(w io.Writer) ApproverOption {
	return func(a *Approver) {
		a.out = newPrinter(w)
	}
}

// WithNotifier posts a summary after approvals
func WithNotifier(n interfaces.Notifier) ApproverOption {
	return func(a *Approver) {
		a.notifier = n
	}
}

// NewApprover creates a new Approver
func NewApprover(githubClient interfaces.GitHubClient, confirmer interfaces.Confirmer, opts ...ApproverOption) *Approver {
	a := &Approver{
		githubClient: githubClient,
		confirmer:    confirmer,
		policy:       model.DefaultPolicy(),
		out:          newPrinter(nil),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run approves every eligible Dependabot pull request of repo after the
// confirmer agreed. Only the initial listing aborts the run; per pull request
// failures are reported and the batch continues.
func (a *Approver) Run(ctx context.Context, repo model.Repository) (*model.ApprovalReport, error) {
	report := &model.ApprovalReport{
		RunID:      uuid.NewString(),
		Repository: repo,
	}
	logger := ctxlog.From(ctx).With("run_id", report.RunID, "repo", repo.FullName())
	ctx = ctxlog.With(ctx, logger)

	prs, err := a.githubClient.ListDependabotPRs(ctx, repo, a.policy.Author)
	if err != nil {
		a.out.Fail("Error: Unable to fetch PR list.")
		return report, goerr.Wrap(err, "failed to list dependabot pull requests", goerr.V("repo", repo.FullName()))
	}
	logger.Debug("Fetched dependabot pull requests", "count", len(prs))

	eligible, verdicts := FilterEligible(prs, a.policy)
	report.Verdicts = verdicts
	for i := range verdicts {
		a.out.Verdict(&verdicts[i])
		logger.Debug("Evaluated pull request",
			"number", verdicts[i].PR.Number,
			"eligible", verdicts[i].Eligible,
			"reason", verdicts[i].Reason,
			"update_type", verdicts[i].UpdateType,
		)
	}

	if len(eligible) == 0 {
		a.out.Printf("No eligible PRs found for approval.")
		return report, nil
	}

	a.out.EligibleList(eligible)

	confirmed, err := a.confirmer.Confirm(ctx, approvalPrompt)
	if err != nil {
		logger.Warn("Confirmation failed, treating as no", "error", err)
		confirmed = false
	}
	report.Confirmed = confirmed
	if !confirmed {
		a.out.Printf("Operation cancelled.")
		return report, nil
	}

	notifications := a.fetchNotifications(ctx)

	for _, pr := range eligible {
		report.Outcomes = append(report.Outcomes, a.approve(ctx, repo, pr, notifications))
	}

	if a.notifier != nil && len(report.Approved()) > 0 {
		if err := a.notifier.NotifyApprovals(ctx, report); err != nil {
			logger.Warn("Failed to send approval summary", "error", err)
			a.out.Fail("Failed to send approval summary: %v", err)
		}
	}

	return report, nil
}

// fetchNotifications returns nil when the inbox cannot be read; approvals
// proceed without reconciliation in that case.
func (a *Approver) fetchNotifications(ctx context.Context) []*model.Notification {
	notifications, err := a.githubClient.ListNotifications(ctx)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to fetch notifications", "error", err)
		a.out.Fail("Could not fetch notifications, skipping cleanup: %v", err)
		return nil
	}
	return notifications
}

func (a *Approver) approve(ctx context.Context, repo model.Repository, pr *model.PullRequest, notifications []*model.Notification) model.ApprovalOutcome {
	logger := ctxlog.From(ctx)
	outcome := model.ApprovalOutcome{PR: pr}

	if err := a.githubClient.ApprovePR(ctx, repo, pr.Number); err != nil {
		logger.Error("Failed to approve pull request", "number", pr.Number, "error", err)
		a.out.Fail("Failed to approve PR #%d: %v", pr.Number, err)
		outcome.Err = err
		return outcome
	}
	outcome.Approved = true
	a.out.OK("Approved PR #%d: %s", pr.Number, pr.Title)

	for _, n := range notifications {
		if !n.IsPullRequest() || !n.References(repo, pr) {
			continue
		}

		if err := a.githubClient.MarkThreadDone(ctx, n.ID); err != nil {
			logger.Warn("Failed to mark notification as done", "thread_id", n.ID, "number", pr.Number, "error", err)
			a.out.Fail("  Failed to mark notification %s as done.", n.ID)
			outcome.UnresolvedThreads = append(outcome.UnresolvedThreads, n.ID)
			continue
		}
		a.out.Printf("  Marked notification %s as done.", n.ID)
		outcome.ResolvedThreads = append(outcome.ResolvedThreads, n.ID)
	}

	return outcome
}
