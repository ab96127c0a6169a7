package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type dependabotReviewer struct {
	githubClient interfaces.GitHubClient
	confirmer    interfaces.Confirmer
	policy       model.Policy

	mergeableRetries  int
	mergeableInterval time.Duration
}

// ReviewerOption configures a webhook reviewer
type ReviewerOption func(*dependabotReviewer)

// WithMergeableRetry sets how often and how far apart a pull request is
// fetched again while GitHub still reports its mergeability as unknown.
func WithMergeableRetry(retries int, interval time.Duration) ReviewerOption {
	return func(r *dependabotReviewer) {
		r.mergeableRetries = retries
		r.mergeableInterval = interval
	}
}

// NewDependabotReviewer creates a reviewer that evaluates one pull request at a
// time, as delivered by webhooks. Approval still goes through the confirmer.
func NewDependabotReviewer(githubClient interfaces.GitHubClient, confirmer interfaces.Confirmer, policy model.Policy, opts ...ReviewerOption) interfaces.PullRequestReviewer {
	r := &dependabotReviewer{
		githubClient:      githubClient,
		confirmer:         confirmer,
		policy:            policy,
		mergeableRetries:  5,
		mergeableInterval: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// fetchSettled fetches the pull request and, while its mergeability is still
// being computed, fetches it again after a pause. The last fetched state is
// returned once retries run out.
func (uc *dependabotReviewer) fetchSettled(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error) {
	for attempt := 0; ; attempt++ {
		pr, err := uc.githubClient.GetPullRequest(ctx, repo, number)
		if err != nil {
			return nil, err
		}
		if pr.Mergeable != model.MergeableUnknown || attempt >= uc.mergeableRetries {
			return pr, nil
		}

		ctxlog.From(ctx).Debug("Mergeability not computed yet, waiting",
			"repo", repo.FullName(),
			"number", number,
			"attempt", attempt+1,
		)

		select {
		case <-ctx.Done():
			return pr, nil
		case <-time.After(uc.mergeableInterval):
		}
	}
}

// ReviewPullRequest fetches the pull request, evaluates it and approves it if
// eligible and confirmed
func (uc *dependabotReviewer) ReviewPullRequest(ctx context.Context, repo model.Repository, number int) (*model.Verdict, error) {
	logger := ctxlog.From(ctx)

	pr, err := uc.fetchSettled(ctx, repo, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch pull request",
			goerr.V("repo", repo.FullName()),
			goerr.V("number", number),
		)
	}

	if !uc.policy.IsAuthor(pr.Author) {
		logger.Info("Ignoring pull request from other author", "repo", repo.FullName(), "number", number, "author", pr.Author)
		return nil, nil
	}

	verdict := Evaluate(pr, uc.policy)
	logger.Info("Evaluated pull request",
		"repo", repo.FullName(),
		"number", number,
		"eligible", verdict.Eligible,
		"reason", verdict.Reason,
		"update_type", verdict.UpdateType,
	)

	if !verdict.Eligible {
		return &verdict, nil
	}

	confirmed, err := uc.confirmer.Confirm(ctx, verdict.Message())
	if err != nil {
		logger.Warn("Confirmation failed, treating as no", "error", err)
		return &verdict, nil
	}
	if !confirmed {
		logger.Info("Approval not confirmed", "repo", repo.FullName(), "number", number)
		return &verdict, nil
	}

	if err := uc.githubClient.ApprovePR(ctx, repo, number); err != nil {
		return &verdict, goerr.Wrap(err, "failed to approve pull request",
			goerr.V("repo", repo.FullName()),
			goerr.V("number", number),
		)
	}

	logger.Info("Approved pull request", "repo", repo.FullName(), "number", number)
	return &verdict, nil
}
