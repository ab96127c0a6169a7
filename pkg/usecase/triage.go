package usecase

import (
	"context"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Triage walks the notification inbox. Threads of closed pull requests are
// marked done; repositories with open Dependabot pull requests are handed to
// the approver one after another.
type Triage struct {
	githubClient interfaces.GitHubClient
	approver     interfaces.RepositoryApprover
	policy       model.Policy
	out          *printer
}

// NewTriage creates a new Triage
func NewTriage(githubClient interfaces.GitHubClient, approver interfaces.RepositoryApprover, policy model.Policy, out io.Writer) *Triage {
	return &Triage{
		githubClient: githubClient,
		approver:     approver,
		policy:       policy,
		out:          newPrinter(out),
	}
}

// Run processes all notifications. Only failing to list them is an error.
func (t *Triage) Run(ctx context.Context) (*model.TriageReport, error) {
	report := &model.TriageReport{RunID: uuid.NewString()}
	logger := ctxlog.From(ctx).With("run_id", report.RunID)
	ctx = ctxlog.With(ctx, logger)

	t.out.Printf("Fetching all GitHub notifications...")
	notifications, err := t.githubClient.ListNotifications(ctx)
	if err != nil {
		t.out.Fail("Error fetching notifications: %v", err)
		return report, goerr.Wrap(err, "failed to list notifications")
	}
	report.Notifications = len(notifications)

	if len(notifications) == 0 {
		t.out.Printf("No notifications to process.")
		return report, nil
	}
	t.out.Printf("Found %d notifications.", len(notifications))

	repos := map[string]model.Repository{}
	for _, n := range notifications {
		if !n.IsPullRequest() || n.SubjectURL == "" {
			continue
		}

		ref, err := model.ParsePullRequestURL(n.SubjectURL)
		if err != nil {
			logger.Warn("Skipping notification with unexpected subject URL", "thread_id", n.ID, "url", n.SubjectURL)
			continue
		}

		pr, err := t.githubClient.GetPullRequest(ctx, ref.Repository, ref.Number)
		if err != nil {
			logger.Warn("Failed to fetch pull request", "thread_id", n.ID, "url", n.SubjectURL, "error", err)
			t.out.Fail("Could not fetch details for PR related to notification %s", n.ID)
			continue
		}

		if pr.IsClosed() {
			t.out.Printf("PR #%d in %s is closed/merged. Marking notification as done.", pr.Number, ref.Repository)
			if err := t.githubClient.MarkThreadDone(ctx, n.ID); err != nil {
				logger.Warn("Failed to mark notification as done", "thread_id", n.ID, "error", err)
				t.out.Fail("  Failed to mark notification %s as done.", n.ID)
				report.ClosedFailed = append(report.ClosedFailed, n.ID)
				continue
			}
			t.out.OK("  Successfully marked notification %s as done.", n.ID)
			report.ClosedDone = append(report.ClosedDone, n.ID)
			continue
		}

		if t.policy.IsAuthor(pr.Author) {
			repos[ref.Repository.FullName()] = ref.Repository
		}
	}

	if len(repos) == 0 {
		t.out.Printf("\nNo open Dependabot PRs found in notifications that require action.")
		return report, nil
	}

	names := make([]string, 0, len(repos))
	for name := range repos {
		names = append(names, name)
	}
	sort.Strings(names)

	t.out.Heading("\nFound open Dependabot PRs in the following repos:")
	for _, name := range names {
		t.out.Printf("- %s", name)
		report.Repositories = append(report.Repositories, repos[name])
	}

	for _, repo := range report.Repositories {
		t.out.Heading("\n--- Running approve for %s ---", repo)
		approval, err := t.approver.Run(ctx, repo)
		if err != nil {
			logger.Error("Approval run failed", "repo", repo.FullName(), "error", err)
			t.out.Fail("Approval for %s failed: %v", repo, err)
		}
		if approval != nil {
			report.Approvals = append(report.Approvals, approval)
		}
		t.out.Heading("--- Finished approve for %s ---", repo)
	}

	return report, nil
}
