package model

import "net/http"

// UpstreamResponse is a raw response of the language model server
type UpstreamResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ToolCall is a function call requested by the model
type ToolCall struct {
	Name      string
	Arguments string // JSON-encoded arguments as sent by the model
}

// ToolResult is the outcome of running one ToolCall locally
type ToolResult struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}
