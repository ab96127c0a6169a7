package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr          string
	webhookSecret string
	webhookUC     interfaces.WebhookUseCase
	proxyUC       interfaces.ProxyUseCase
	maxBodySize   int64
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithWebhook mounts the GitHub App webhook endpoint
func WithWebhook(secret string, uc interfaces.WebhookUseCase) Option {
	return func(c *config) {
		c.webhookSecret = secret
		c.webhookUC = uc
	}
}

// WithProxy mounts the tool-calling proxy on every other POST path
func WithProxy(uc interfaces.ProxyUseCase) Option {
	return func(c *config) {
		c.proxyUC = uc
	}
}

// WithMaxBodySize limits request bodies in bytes
func WithMaxBodySize(n int64) Option {
	return func(c *config) {
		c.maxBodySize = n
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server. Only the health endpoint is always
// mounted; webhook and proxy routes depend on the options.
func NewServer(ctx context.Context, opts ...Option) *Server {
	cfg := &config{
		addr:        "localhost:8080",
		maxBodySize: 10 << 20,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(cfg.maxBodySize))

	router.Get("/health", healthHandler(cfg))

	if cfg.webhookUC != nil {
		webhookHandler := NewWebhookHandler(cfg.webhookSecret, cfg.webhookUC)
		router.Post("/hooks/github/app", webhookHandler.Handle)
	}

	if cfg.proxyUC != nil {
		proxyHandler := NewProxyHandler(cfg.proxyUC)
		router.Post("/*", proxyHandler.Handle)
	}

	return &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}
}
