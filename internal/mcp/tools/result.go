package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult wraps a human-readable summary line for tool responses; the
// structured payload travels separately.
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}
