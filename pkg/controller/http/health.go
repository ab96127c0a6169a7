package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
)

const serviceName = "depherd"

func healthHandler(cfg *config) http.HandlerFunc {
	features := []string{}
	if cfg.webhookUC != nil {
		features = append(features, "webhook")
	}
	if cfg.proxyUC != nil {
		features = append(features, "proxy")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		status := &model.HealthStatus{
			Status:   "healthy",
			Service:  serviceName,
			Version:  types.Version,
			Features: features,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}
