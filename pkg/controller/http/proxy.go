package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ProxyHandler relays chat completion requests through the tool proxy
type ProxyHandler struct {
	proxyUC interfaces.ProxyUseCase
}

func NewProxyHandler(proxyUC interfaces.ProxyUseCase) *ProxyHandler {
	return &ProxyHandler{proxyUC: proxyUC}
}

func (h *ProxyHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	path := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if path == "" {
		writeError(w, goerr.New("path is required"), http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	resp, err := h.proxyUC.Forward(ctx, path, body)
	if err != nil {
		if errors.Is(err, types.ErrInvalidArgument) {
			writeError(w, err, http.StatusBadRequest)
			return
		}
		logger.Error("Failed to forward request", "path", path, "error", err)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		logger.Error("Failed to write proxy response", "error", err)
	}
}
