package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	controller "github.com/m-mizutani/depherd/pkg/controller/http"
	"github.com/m-mizutani/depherd/pkg/domain/mock"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func getHealth(t *testing.T, server *controller.Server) model.HealthStatus {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)
	gt.Number(t, w.Code).Equal(http.StatusOK)

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	return status
}

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()

	t.Run("webhook server", func(t *testing.T) {
		server := controller.NewServer(ctx,
			controller.WithAddr("localhost:0"),
			controller.WithWebhook("test-secret", &mock.WebhookUseCaseMock{}),
		)

		status := getHealth(t, server)
		gt.Value(t, status.Status).Equal("healthy")
		gt.Value(t, status.Service).Equal("depherd")
		gt.True(t, status.Version != "")
		gt.Value(t, status.Features).Equal([]string{"webhook"})
	})

	t.Run("bare server", func(t *testing.T) {
		status := getHealth(t, controller.NewServer(ctx))
		gt.Number(t, len(status.Features)).Equal(0)
	})
}
