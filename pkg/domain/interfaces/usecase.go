package interfaces

//go:generate moq -out ../mock/usecase_mock.go -pkg mock . WebhookUseCase PullRequestReviewer RepositoryApprover Confirmer

import (
	"context"

	"github.com/m-mizutani/depherd/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// PullRequestReviewer evaluates a single pull request and approves it when eligible
type PullRequestReviewer interface {
	ReviewPullRequest(ctx context.Context, repo model.Repository, number int) (*model.Verdict, error)
}

// RepositoryApprover runs the interactive approval flow for a repository
type RepositoryApprover interface {
	Run(ctx context.Context, repo model.Repository) (*model.ApprovalReport, error)
}

// Confirmer is the human confirmation gate. Only an explicit yes may return true.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}
