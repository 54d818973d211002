package mcp

import mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterAllTools wires every complexcalc tool into the MCP server.
func RegisterAllTools(s *mcpsdk.Server, state *MCPServer) {
	registerCalculateTools(s, state)
	registerBatchTools(s, state)
	registerHistoryTools(s, state)
}
