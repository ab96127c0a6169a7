package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
)

type webhookUseCase struct {
	reviewer interfaces.PullRequestReviewer
	policy   model.Policy
}

// NewWebhook creates a new instance of WebhookUseCase. reviewer may be nil,
// in which case events are only logged.
func NewWebhook(reviewer interfaces.PullRequestReviewer, policy model.Policy) *webhookUseCase {
	return &webhookUseCase{
		reviewer: reviewer,
		policy:   policy,
	}
}

// ProcessEvent processes a webhook event. Reviews of Dependabot pull requests
// run asynchronously so that GitHub receives its response immediately.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Debug("Unsupported event received",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	if !uc.policy.IsAuthor(event.PRAuthor) {
		logger.Debug("Ignoring pull request from other author", "author", event.PRAuthor)
		return nil
	}

	repo, err := model.ParseRepository(event.Repository)
	if err != nil {
		return goerr.Wrap(err, "invalid repository in webhook event", goerr.V("delivery", event.ID))
	}

	if uc.reviewer == nil {
		return nil
	}

	number := event.PRNumber
	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := uc.reviewer.ReviewPullRequest(ctx, repo, number)
		return err
	})

	return nil
}
