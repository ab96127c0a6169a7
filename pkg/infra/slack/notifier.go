package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Notifier posts approval summaries to a Slack incoming webhook
type Notifier struct {
	webhookURL string
}

var _ interfaces.Notifier = (*Notifier)(nil)

func New(webhookURL string) *Notifier {
	return &Notifier{webhookURL: webhookURL}
}

func (n *Notifier) NotifyApprovals(ctx context.Context, report *model.ApprovalReport) error {
	approved := report.Approved()
	if len(approved) == 0 {
		return nil
	}

	msg := buildMessage(report, approved)
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post slack message",
			goerr.V("repo", report.Repository.FullName()),
			goerr.V("run_id", report.RunID),
		)
	}

	ctxlog.From(ctx).Info("Posted approval summary to Slack", "repo", report.Repository.FullName(), "approved", len(approved))
	return nil
}

func buildMessage(report *model.ApprovalReport, approved []*model.PullRequest) *slack.WebhookMessage {
	header := fmt.Sprintf("Approved %d Dependabot PR(s) in %s", len(approved), report.Repository.FullName())

	var lines []string
	for _, pr := range approved {
		if pr.URL != "" {
			lines = append(lines, fmt.Sprintf("• <%s|#%d> %s", pr.URL, pr.Number, pr.Title))
		} else {
			lines = append(lines, fmt.Sprintf("• #%d %s", pr.Number, pr.Title))
		}
	}

	var failed int
	for _, o := range report.Outcomes {
		if !o.Approved {
			failed++
		}
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, header, false, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false), nil, nil),
	}
	if failed > 0 {
		note := fmt.Sprintf("%d approval(s) failed, see run `%s`", failed, report.RunID)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, note, false, false)))
	}

	return &slack.WebhookMessage{
		Text:   header,
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}
