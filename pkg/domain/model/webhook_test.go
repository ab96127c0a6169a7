package model_test

import (
	"testing"

	"github.com/m-mizutani/depherd/pkg/domain/model"
)

func TestWebhookEvent_IsSupportedEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    *model.WebhookEvent
		expected bool
	}{
		{
			name: "Pull Request opened - supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: "opened",
			},
			expected: true,
		},
		{
			name: "Pull Request synchronize - supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: "synchronize",
			},
			expected: true,
		},
		{
			name: "Pull Request reopened - supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: "reopened",
			},
			expected: true,
		},
		{
			name: "Pull Request closed - not supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypePullRequest,
				Action: "closed",
			},
			expected: false,
		},
		{
			name: "Ping - not supported",
			event: &model.WebhookEvent{
				Type: model.EventTypePing,
			},
			expected: false,
		},
		{
			name: "Unknown event type",
			event: &model.WebhookEvent{
				Type:   model.EventTypeUnknown,
				Action: "opened",
			},
			expected: false,
		},
		{
			name: "Different event type",
			event: &model.WebhookEvent{
				Type:   model.WebhookEventType("issues"),
				Action: "opened",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.IsSupportedEvent()
			if got != tt.expected {
				t.Errorf("IsSupportedEvent() = %v, want %v", got, tt.expected)
			}
		})
	}
}
