package interfaces

import (
	"context"

	"github.com/m-mizutani/depherd/pkg/domain/model"
)

// ChatUpstream is an OpenAI-compatible language model server
type ChatUpstream interface {
	// Post sends body to path below the upstream base URL and returns the raw response
	Post(ctx context.Context, path string, body []byte) (*model.UpstreamResponse, error)
}

// Tool is a function the proxy runs locally when the model requests it
type Tool interface {
	Name() string
	Run(ctx context.Context, args map[string]any) (string, error)
}

// ProxyUseCase forwards chat requests upstream and runs requested tools
type ProxyUseCase interface {
	Forward(ctx context.Context, path string, body []byte) (*model.UpstreamResponse, error)
}
