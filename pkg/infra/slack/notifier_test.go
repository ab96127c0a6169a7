package slack_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/infra/slack"
	"github.com/m-mizutani/gt"
	"github.com/tidwall/gjson"
)

func newReport() *model.ApprovalReport {
	return &model.ApprovalReport{
		RunID:      "run-1",
		Repository: model.Repository{Owner: "octo", Name: "hello"},
		Outcomes: []model.ApprovalOutcome{
			{PR: &model.PullRequest{Number: 1, Title: "Bump lodash from 4.17.20 to 4.17.21", URL: "https://github.com/octo/hello/pull/1"}, Approved: true},
			{PR: &model.PullRequest{Number: 2, Title: "Bump axios from 1.6.0 to 1.7.0"}, Err: errors.New("forbidden")},
		},
	}
}

func TestNotifier_NotifyApprovals(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := slack.New(server.URL).NotifyApprovals(context.Background(), newReport())
	gt.NoError(t, err)

	gt.Value(t, gjson.GetBytes(body, "text").String()).Equal("Approved 1 Dependabot PR(s) in octo/hello")
	gt.String(t, gjson.GetBytes(body, "blocks.1.text.text").String()).Contains("<https://github.com/octo/hello/pull/1|#1>")
	gt.String(t, gjson.GetBytes(body, "blocks.2.elements.0.text").String()).Contains("1 approval(s) failed")
}

func TestNotifier_NothingApproved(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	err := slack.New(server.URL).NotifyApprovals(context.Background(), &model.ApprovalReport{})
	gt.NoError(t, err)
	gt.False(t, called)
}

func TestNotifier_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := slack.New(server.URL).NotifyApprovals(context.Background(), newReport())
	gt.Error(t, err)
}
