package lmstudio_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/depherd/pkg/infra/lmstudio"
	"github.com/m-mizutani/gt"
)

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPost)
		gt.Value(t, r.URL.Path).Equal("/v1/chat/completions")
		gt.Value(t, r.Header.Get("Content-Type")).Equal("application/json")

		body, _ := io.ReadAll(r.Body)
		gt.Value(t, string(body)).Equal(`{"model":"qwen"}`)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	client := lmstudio.New(server.URL + "/v1/")
	resp, err := client.Post(context.Background(), "/chat/completions", []byte(`{"model":"qwen"}`))
	gt.NoError(t, err)
	gt.Number(t, resp.StatusCode).Equal(http.StatusCreated)
	gt.Value(t, string(resp.Body)).Equal(`{"id":"1"}`)
	gt.Value(t, resp.Header.Get("Content-Type")).Equal("application/json")
}

func TestClient_Post_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := lmstudio.New(url).Post(context.Background(), "chat/completions", []byte(`{}`))
	gt.True(t, errors.Is(err, types.ErrTransport))
}
