// Package mcp implements the MCP-style tool endpoint. Tool calls arrive
// as JSON over POST /mcp and return text content blocks, mirroring the
// Model Context Protocol tool-call shape.
package mcp

import "encoding/json"

// Request is the incoming tool invocation.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// Response wraps either a tool result or a protocol-level error.
type Response struct {
	Result *ToolResult `json:"result,omitempty"`
	Error  *Error      `json:"error,omitempty"`
}

// Error is a JSON-RPC style protocol error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// JSON-RPC error codes used by the endpoint.
const (
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// ToolResult is the content returned by a tool. Tool-level failures set
// IsError instead of surfacing as protocol errors.
type ToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Content is one content block of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// textResult wraps plain text in the tool result shape.
func textResult(text string) *ToolResult {
	return &ToolResult{Content: []Content{{Type: "text", Text: text}}}
}

// errorResult wraps a failure message in the tool result shape.
func errorResult(text string) *ToolResult {
	return &ToolResult{
		Content: []Content{{Type: "text", Text: text}},
		IsError: true,
	}
}

// jsonResult renders a value as indented JSON text, matching the shape
// reader clients expect from the tool surface.
func jsonResult(v any) *ToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
