package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ToolProxy augments chat completion requests with local tools: it injects
// the tool schemas into the request and runs the tool calls of the response.
type ToolProxy struct {
	upstream interfaces.ChatUpstream
	schemas  []json.RawMessage
	tools    map[string]interfaces.Tool
}

// NewToolProxy creates a ToolProxy. schemas are OpenAI tool objects sent with
// every request; tools are the implementations run for tool calls.
func NewToolProxy(upstream interfaces.ChatUpstream, schemas []json.RawMessage, tools ...interfaces.Tool) *ToolProxy {
	p := &ToolProxy{
		upstream: upstream,
		schemas:  schemas,
		tools:    make(map[string]interfaces.Tool, len(tools)),
	}
	for _, t := range tools {
		p.tools[t.Name()] = t
	}
	return p
}

// Forward sends body to the upstream path. Non-200 responses are returned as
// they are. Tool results are attached to 200 responses as "tool_results".
func (p *ToolProxy) Forward(ctx context.Context, path string, body []byte) (*model.UpstreamResponse, error) {
	logger := ctxlog.From(ctx)

	if !gjson.ValidBytes(body) {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "request body is not valid JSON")
	}

	tools := p.schemas
	if tools == nil {
		tools = []json.RawMessage{}
	}
	rawTools, err := json.Marshal(tools)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode tool schemas")
	}
	body, err = sjson.SetRawBytes(body, "tools", rawTools)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to inject tool schemas")
	}

	resp, err := p.upstream.Post(ctx, path, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call upstream", goerr.V("path", path))
	}
	if resp.StatusCode != http.StatusOK {
		logger.Warn("Upstream returned error", "path", path, "status", resp.StatusCode)
		return resp, nil
	}

	calls := ExtractToolCalls(resp.Body)
	if len(calls) == 0 {
		return resp, nil
	}

	results := make([]model.ToolResult, 0, len(calls))
	for _, call := range calls {
		results = append(results, p.run(ctx, call))
	}

	rawResults, err := json.Marshal(results)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode tool results")
	}
	patched, err := sjson.SetRawBytes(resp.Body, "tool_results", rawResults)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to attach tool results")
	}

	resp.Body = patched
	return resp, nil
}

func (p *ToolProxy) run(ctx context.Context, call model.ToolCall) model.ToolResult {
	logger := ctxlog.From(ctx)
	result := model.ToolResult{Name: call.Name}

	tool, ok := p.tools[call.Name]
	if !ok {
		result.Content = fmt.Sprintf("Unknown tool: %s", call.Name)
		return result
	}

	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			result.Error = fmt.Sprintf("invalid arguments: %v", err)
			return result
		}
	}

	content, err := tool.Run(ctx, args)
	if err != nil {
		logger.Warn("Tool failed", "tool", call.Name, "error", err)
		result.Error = err.Error()
		return result
	}

	logger.Info("Tool executed", "tool", call.Name)
	result.Content = content
	return result
}

// ExtractToolCalls lists the function calls of a chat completion response.
// Calls under every choice's message come first, followed by calls in a
// top-level "tool_calls" array.
func ExtractToolCalls(body []byte) []model.ToolCall {
	var calls []model.ToolCall
	collect := func(_, call gjson.Result) bool {
		calls = append(calls, model.ToolCall{
			Name:      call.Get("function.name").String(),
			Arguments: call.Get("function.arguments").String(),
		})
		return true
	}

	gjson.GetBytes(body, "choices").ForEach(func(_, choice gjson.Result) bool {
		choice.Get("message.tool_calls").ForEach(collect)
		return true
	})
	gjson.GetBytes(body, "tool_calls").ForEach(collect)
	return calls
}
