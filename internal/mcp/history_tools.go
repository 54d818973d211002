package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// --- calculation_history ---

type CalculationHistoryInput struct {
	Clear bool `json:"clear,omitempty" jsonschema:"empty the history after returning it"`
}

func registerHistoryTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "calculation_history",
		Description: "Return the most recent successful calculations made through this server, oldest first.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in CalculationHistoryInput) (*mcpsdk.CallToolResult, any, error) {
		history := state.History()
		if in.Clear {
			state.ClearHistory()
		}
		return textResult(AnalysisResult{
			Description: "calculation history",
			Data:        history,
		}), nil, nil
	})
}
