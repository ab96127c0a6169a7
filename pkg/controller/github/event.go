package github

import (
	"errors"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ParseEvent decodes a webhook delivery into a WebhookEvent. Event types
// other than pull_request and ping become EventTypeUnknown.
func ParseEvent(eventType, deliveryID string, body []byte) (*model.WebhookEvent, error) {
	payload, err := github.ParseWebHook(eventType, body)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(types.ErrParse, err), "invalid webhook payload",
			goerr.V("event_type", eventType),
			goerr.V("delivery", deliveryID),
		)
	}

	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(eventType),
		ReceivedAt: time.Now(),
		RawPayload: body,
	}

	switch e := payload.(type) {
	case *github.PullRequestEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
		event.PRNumber = e.GetNumber()
		if event.PRNumber == 0 {
			event.PRNumber = e.GetPullRequest().GetNumber()
		}
		event.PRAuthor = e.GetPullRequest().GetUser().GetLogin()
	case *github.PingEvent:
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
	default:
		event.Type = model.EventTypeUnknown
	}

	return event, nil
}
